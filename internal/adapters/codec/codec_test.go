package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/codec"
	"go.trai.ch/stylecache/internal/core/domain"
)

func sampleTree() *domain.Node {
	return domain.NewNode("root", "", 0,
		domain.NewNode("comment", "/* generated */", 1),
		domain.NewNode("rule", "a:hover", 2,
			domain.NewNode("prop", "color", 3).SetAttr("value", "#fff").SetAttr("important", "true"),
			domain.NewNode("prop", "font", 4,
				domain.NewNode("prop", "family", 5).SetAttr("value", "sans-serif"),
			),
		),
		domain.NewNode("import", "partials/base", 7).SetAttr("resolved", "lib/partials/_base.sass"),
		domain.NewNode("rule", "ünïcødé ✓", -1),
	)
}

func deepTree(depth int) *domain.Node {
	root := domain.NewNode("root", "", 0)
	current := root
	for i := 1; i < depth; i++ {
		child := domain.NewNode("rule", "", i)
		current.Append(child)
		current = child
	}
	return root
}

func TestCodec_RoundTrip(t *testing.T) {
	c := codec.New()

	tests := []struct {
		name string
		tree *domain.Node
	}{
		{name: "single node", tree: domain.NewNode("root", "", 0)},
		{name: "nested tree", tree: sampleTree()},
		{name: "binary-ish values", tree: domain.NewNode("raw", "\x00\n\xff", 1).SetAttr("", "\n")},
		{name: "large value", tree: domain.NewNode("text", strings.Repeat("a { b: c }\n", 5000), 1)},
		{name: "deep but allowed", tree: deepTree(codec.MaxDepth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Encode(tt.tree)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte(codec.Magic)))

			got, err := c.Decode(data)
			require.NoError(t, err)
			assert.True(t, tt.tree.Equal(got), "decoded tree differs from original")
		})
	}
}

func TestCodec_EncodeIsDeterministic(t *testing.T) {
	c := codec.New()

	first, err := c.Encode(sampleTree())
	require.NoError(t, err)

	for range 10 {
		again, err := c.Encode(sampleTree())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCodec_EncodeErrors(t *testing.T) {
	c := codec.New()

	t.Run("nil root", func(t *testing.T) {
		_, err := c.Encode(nil)
		require.ErrorIs(t, err, domain.ErrTreeEncodeFailed)
	})

	t.Run("nil child", func(t *testing.T) {
		_, err := c.Encode(&domain.Node{Kind: "root", Children: []*domain.Node{nil}})
		require.ErrorIs(t, err, domain.ErrTreeEncodeFailed)
	})

	t.Run("too deep", func(t *testing.T) {
		_, err := c.Encode(deepTree(codec.MaxDepth + 1))
		require.ErrorIs(t, err, domain.ErrTreeTooDeep)
		require.ErrorIs(t, err, domain.ErrTreeEncodeFailed)
	})
}

func TestCodec_DecodeRejectsCorruptInput(t *testing.T) {
	c := codec.New()
	valid, err := c.Encode(sampleTree())
	require.NoError(t, err)

	corrupt := func(mutate func([]byte) []byte) []byte {
		data := bytes.Clone(valid)
		return mutate(data)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short header", data: valid[:5]},
		{name: "bad magic", data: corrupt(func(b []byte) []byte { b[0] = 'X'; return b })},
		{name: "unknown version", data: corrupt(func(b []byte) []byte { b[len(codec.Magic)] = codec.Version + 1; return b })},
		{name: "checksum flipped", data: corrupt(func(b []byte) []byte { b[len(codec.Magic)+1] ^= 0xff; return b })},
		{name: "truncated frame", data: valid[:len(valid)/2]},
		{name: "garbage frame", data: append(bytes.Clone(valid[:len(codec.Magic)+9]), []byte("not an lz4 frame")...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decode(tt.data)
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrTreeDecodeFailed)
			assert.Nil(t, got)
		})
	}
}

func TestCodec_DecodeChecksumMismatch(t *testing.T) {
	c := codec.New()
	data, err := c.Encode(sampleTree())
	require.NoError(t, err)

	data[len(codec.Magic)+1] ^= 0x01

	_, err = c.Decode(data)
	require.ErrorIs(t, err, domain.ErrTreeChecksumMismatch)
}
