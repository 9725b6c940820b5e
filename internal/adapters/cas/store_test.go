package cas_test

import (
	"crypto/sha1" //nolint:gosec // Mirrors the entry path derivation
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/cas"
	"go.trai.ch/stylecache/internal/core/domain"
)

func dirHash(t *testing.T, dir string) string {
	t.Helper()
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	sum := sha1.Sum([]byte(abs)) //nolint:gosec // test helper
	return hex.EncodeToString(sum[:])
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

func TestStore_EntryPath(t *testing.T) {
	store := cas.NewStore("3.0")
	srcDir := t.TempDir()
	source := filepath.Join(srcDir, "a.sass")

	got, err := store.EntryPath("/tmp/cache", source)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/tmp/cache", dirHash(t, srcDir), "a.sassc"), got)
}

func TestStore_EntryPath_SameBaseNameDifferentDirs(t *testing.T) {
	store := cas.NewStore("3.0")
	root := t.TempDir()

	a, err := store.EntryPath(root, filepath.Join("one", "style.sass"))
	require.NoError(t, err)
	b, err := store.EntryPath(root, filepath.Join("two", "style.sass"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, filepath.Base(a), filepath.Base(b))
}

func TestStore_EntryPath_RelativeSourceUsesAbsoluteDir(t *testing.T) {
	store := cas.NewStore("3.0")

	rel, err := store.EntryPath("cache", "a.sass")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	abs, err := store.EntryPath("cache", filepath.Join(cwd, "a.sass"))
	require.NoError(t, err)

	assert.Equal(t, abs, rel)
}

func TestStore_WriteAndRead(t *testing.T) {
	store := cas.NewStore("3.0")
	entry := filepath.Join(t.TempDir(), "cache", "abc", "a.sassc")
	fp := domain.NewFingerprint([]byte("x"))
	payload := []byte{0x00, '\n', 0xff, 'b', 'l', 'o', 'b', '\n'}

	require.True(t, store.Write(entry, fp, payload))

	//nolint:gosec // Test file with controlled path
	raw, err := os.ReadFile(entry)
	require.NoError(t, err)
	want := append([]byte("3.0\n"+fp.String()+"\n"), payload...)
	assert.Equal(t, want, raw)

	got, ok := store.Read(entry, fp)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestStore_Read_EmptyPayload(t *testing.T) {
	store := cas.NewStore("3.0")
	entry := filepath.Join(t.TempDir(), "a.sassc")
	fp := domain.NewFingerprint([]byte(""))

	require.True(t, store.Write(entry, fp, nil))

	got, ok := store.Read(entry, fp)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestStore_Read_Misses(t *testing.T) {
	fp := domain.NewFingerprint([]byte("x"))

	tests := []struct {
		name    string
		content string
	}{
		{name: "version mismatch", content: "2.9\n" + fp.String() + "\nblob"},
		{name: "fingerprint mismatch", content: "3.0\n" + domain.NewFingerprint([]byte("y")).String() + "\nblob"},
		{name: "version with trailing space", content: "3.0 \n" + fp.String() + "\nblob"},
		{name: "truncated header", content: "3.0\n" + fp.String()},
		{name: "empty file", content: ""},
		{name: "version only", content: "3.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := filepath.Join(t.TempDir(), "a.sassc")
			require.NoError(t, os.WriteFile(entry, []byte(tt.content), domain.FilePerm))

			got, ok := cas.NewStore("3.0").Read(entry, fp)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestStore_Read_MissingFile(t *testing.T) {
	got, ok := cas.NewStore("3.0").Read(filepath.Join(t.TempDir(), "missing.sassc"), "abc")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_Read_VersionChange(t *testing.T) {
	entry := filepath.Join(t.TempDir(), "a.sassc")
	fp := domain.NewFingerprint([]byte("x"))

	require.True(t, cas.NewStore("A").Write(entry, fp, []byte("blob")))

	_, ok := cas.NewStore("B").Read(entry, fp)
	assert.False(t, ok)

	got, ok := cas.NewStore("A").Read(entry, fp)
	require.True(t, ok)
	assert.Equal(t, []byte("blob"), got)
}

func TestStore_Write_OverwritesExistingEntry(t *testing.T) {
	store := cas.NewStore("3.0")
	entry := filepath.Join(t.TempDir(), "a.sassc")
	oldFP := domain.NewFingerprint([]byte("old"))
	newFP := domain.NewFingerprint([]byte("new"))

	require.True(t, store.Write(entry, oldFP, []byte("old blob")))
	require.True(t, store.Write(entry, newFP, []byte("new blob")))

	_, ok := store.Read(entry, oldFP)
	assert.False(t, ok)

	got, ok := store.Read(entry, newFP)
	require.True(t, ok)
	assert.Equal(t, []byte("new blob"), got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(entry), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_Write_RootIsAFile(t *testing.T) {
	store := cas.NewStore("3.0")
	root := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), domain.FilePerm))

	entry := filepath.Join(root, "abc", "a.sassc")
	assert.False(t, store.Write(entry, "fp", []byte("blob")))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(root)
	require.NoError(t, err)
	assert.Equal(t, "not a dir", string(content))
}

func TestStore_Write_ParentNotWritable(t *testing.T) {
	skipIfRoot(t)

	parent := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(parent, 0o500))
	t.Cleanup(func() { _ = os.Chmod(parent, domain.DirPerm) })

	store := cas.NewStore("3.0")
	entry := filepath.Join(parent, "cache", "abc", "a.sassc")

	assert.False(t, store.Write(entry, "fp", []byte("blob")))
	_, err := os.Stat(filepath.Join(parent, "cache"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Write_EntryDirNotWritableKeepsExistingEntry(t *testing.T) {
	skipIfRoot(t)

	store := cas.NewStore("3.0")
	dir := filepath.Join(t.TempDir(), "abc")
	entry := filepath.Join(dir, "a.sassc")
	fp := domain.NewFingerprint([]byte("x"))

	require.True(t, store.Write(entry, fp, []byte("good")))
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, domain.DirPerm) })

	assert.False(t, store.Write(entry, domain.NewFingerprint([]byte("y")), []byte("newer")))

	got, ok := store.Read(entry, fp)
	require.True(t, ok)
	assert.Equal(t, []byte("good"), got)
}

func TestStore_Write_ReadOnlyEntryKeepsExistingEntry(t *testing.T) {
	skipIfRoot(t)

	store := cas.NewStore("3.0")
	entry := filepath.Join(t.TempDir(), "abc", "a.sassc")
	fp := domain.NewFingerprint([]byte("x"))

	require.True(t, store.Write(entry, fp, []byte("good")))
	require.NoError(t, os.Chmod(entry, 0o444))

	assert.False(t, store.Write(entry, domain.NewFingerprint([]byte("y")), []byte("newer")))

	got, ok := store.Read(entry, fp)
	require.True(t, ok)
	assert.Equal(t, []byte("good"), got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(entry), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_Write_RootUnderReadOnlyParent(t *testing.T) {
	skipIfRoot(t)

	parent := filepath.Join(t.TempDir(), "locked")
	root := filepath.Join(parent, "cache")
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { _ = os.Chmod(parent, domain.DirPerm) })

	store := cas.NewStore("3.0")
	entry := filepath.Join(root, "abc", "a.sassc")

	assert.False(t, store.Write(entry, "fp", []byte("blob")))
	_, err := os.Stat(filepath.Join(root, "abc"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Write_ReadOnlyRoot(t *testing.T) {
	skipIfRoot(t)

	root := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.Mkdir(root, 0o500))
	t.Cleanup(func() { _ = os.Chmod(root, domain.DirPerm) })

	store := cas.NewStore("3.0")
	assert.False(t, store.Write(filepath.Join(root, "abc", "a.sassc"), "fp", []byte("blob")))
}

func TestStore_Write_MissingRootParent(t *testing.T) {
	store := cas.NewStore("3.0")
	entry := filepath.Join(t.TempDir(), "missing", "cache", "abc", "a.sassc")

	assert.False(t, store.Write(entry, "fp", []byte("blob")))
	_, err := os.Stat(filepath.Dir(entry))
	assert.True(t, os.IsNotExist(err))
}
