// Package cas implements the on-disk cache of encoded stylesheet trees.
package cas

import (
	"bufio"
	"crypto/sha1" //nolint:gosec // SHA-1 names entry directories, it is not a security boundary
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a file-per-source strategy.
//
// An entry is a text header followed by the payload:
//
//	<version>\n
//	<fingerprint>\n
//	<payload to EOF>
type Store struct {
	version string
}

// NewStore creates a Store that reads and writes entries tagged with version.
func NewStore(version string) *Store {
	return &Store{version: version}
}

// Version returns the format version entries are tagged with.
func (s *Store) Version() string {
	return s.version
}

// EntryPath returns root/<sha1(abs dir of source)>/<base of source>c.
func (s *Store) EntryPath(root, source string) (string, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrEntryPathFailed, err), "failed to locate cache entry"), "path", source)
	}

	sum := sha1.Sum([]byte(filepath.Dir(abs))) //nolint:gosec // see import
	dirHash := hex.EncodeToString(sum[:])

	return filepath.Join(root, dirHash, filepath.Base(abs)+domain.EntrySuffix), nil
}

// Read returns the payload of the entry if its header matches the running
// version and fingerprint. The payload is only read once both lines match.
func (s *Store) Read(entryPath string, fingerprint domain.Fingerprint) ([]byte, bool) {
	//nolint:gosec // Path is derived from the cache root and a hashed directory name
	f, err := os.Open(entryPath)
	if err != nil {
		return nil, false
	}
	defer f.Close() //nolint:errcheck // Read-only file

	r := bufio.NewReader(f)

	if line, ok := readLine(r); !ok || line != s.version {
		return nil, false
	}
	if line, ok := readLine(r); !ok || line != fingerprint.String() {
		return nil, false
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Write stores the entry. It returns false, leaving any existing entry and
// directory untouched, when the cache root's parent is not writable, or when
// the cache root, the entry directory or the entry itself exists without being
// writable. Later failures are reported the same way.
//
// The cache root is the grandparent of entryPath, as laid out by EntryPath.
func (s *Store) Write(entryPath string, fingerprint domain.Fingerprint, payload []byte) bool {
	dir := filepath.Dir(entryPath)
	root := filepath.Dir(dir)

	if !writable(filepath.Dir(root)) || existsReadOnly(root) || existsReadOnly(dir) || existsReadOnly(entryPath) {
		return false
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(entryPath)+".*.tmp")
	if err != nil {
		return false
	}
	tmpName := tmp.Name()

	if err := writeEntry(tmp, s.version, fingerprint, payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return false
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return false
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return false
	}
	if err := os.Rename(tmpName, entryPath); err != nil {
		_ = os.Remove(tmpName)
		return false
	}
	return true
}

func writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// existsReadOnly reports whether path exists but may not be written.
func existsReadOnly(path string) bool {
	err := unix.Access(path, unix.W_OK)
	return err != nil && !errors.Is(err, fs.ErrNotExist)
}

func writeEntry(w io.Writer, version string, fingerprint domain.Fingerprint, payload []byte) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString(version)
	_ = bw.WriteByte('\n')
	_, _ = bw.WriteString(fingerprint.String())
	_ = bw.WriteByte('\n')
	_, _ = bw.Write(payload)
	return bw.Flush()
}

// readLine reads one '\n'-terminated line without its terminator.
// A missing terminator means the header is truncated.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", false
	}
	return line[:len(line)-1], true
}
