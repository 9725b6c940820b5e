// Package codec implements the binary encoding used to persist parsed trees.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/pierrec/lz4/v4"
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeCodec = (*Codec)(nil)

const (
	// Magic identifies an encoded tree.
	Magic = "STRE"

	// Version is the encoding version. Bump it whenever the body layout changes.
	Version byte = 1

	// MaxDepth bounds tree nesting on both encode and decode.
	MaxDepth = 512

	checksumLen = 8
	headerLen   = len(Magic) + 1 + checksumLen

	// minNodeLen is the smallest possible encoded node: five single-byte varints.
	minNodeLen = 5
	// minAttrLen is the smallest possible encoded attribute: two empty strings.
	minAttrLen = 2
)

// Codec encodes trees as a small header followed by an lz4 frame.
//
// Header: Magic, Version, little-endian xxhash64 of the uncompressed body.
// Body, per node, depth-first:
//
//	kind   uvarint length + bytes
//	value  uvarint length + bytes
//	line   varint
//	attrs  uvarint count, then key/value strings sorted by key
//	nodes  uvarint count, then each child
type Codec struct {
	maxDepth int
}

// New creates a Codec.
func New() *Codec {
	return &Codec{maxDepth: MaxDepth}
}

// Encode serializes root.
func (c *Codec) Encode(root *domain.Node) ([]byte, error) {
	body, err := c.appendNode(nil, root, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(headerLen + len(body)/2)
	buf.WriteString(Magic)
	buf.WriteByte(Version)
	buf.Write(binary.LittleEndian.AppendUint64(nil, xxhash.Sum64(body)))

	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrTreeEncodeFailed, err), "failed to compress tree")
	}
	if err := zw.Close(); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrTreeEncodeFailed, err), "failed to compress tree")
	}

	return buf.Bytes(), nil
}

func (c *Codec) appendNode(dst []byte, n *domain.Node, depth int) ([]byte, error) {
	if n == nil {
		return nil, zerr.Wrap(domain.ErrTreeEncodeFailed, "nil node in tree")
	}
	if depth >= c.maxDepth {
		return nil, zerr.With(errors.Join(domain.ErrTreeEncodeFailed, domain.ErrTreeTooDeep), "max_depth", c.maxDepth)
	}

	dst = appendString(dst, n.Kind)
	dst = appendString(dst, n.Value)
	dst = binary.AppendVarint(dst, int64(n.Line))

	dst = binary.AppendUvarint(dst, uint64(len(n.Attrs)))
	for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
		dst = appendString(dst, key)
		dst = appendString(dst, n.Attrs[key])
	}

	dst = binary.AppendUvarint(dst, uint64(len(n.Children)))
	for _, child := range n.Children {
		var err error
		dst, err = c.appendNode(dst, child, depth+1)
		if err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func appendString(dst []byte, s string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}

// Decode restores a tree produced by Encode. It never panics on malformed
// input: every length is checked against the remaining data.
func (c *Codec) Decode(data []byte) (*domain.Node, error) {
	if len(data) < headerLen {
		return nil, invalid("payload shorter than header", len(data))
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, invalid("bad magic", 0)
	}
	if v := data[len(Magic)]; v != Version {
		return nil, zerr.With(invalid("unsupported encoding version", len(Magic)), "version", v)
	}
	checksum := binary.LittleEndian.Uint64(data[len(Magic)+1 : headerLen])

	body, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data[headerLen:])))
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrTreeDecodeFailed, err), "failed to decompress tree")
	}
	if xxhash.Sum64(body) != checksum {
		return nil, errors.Join(domain.ErrTreeDecodeFailed, domain.ErrTreeChecksumMismatch)
	}

	d := &decoder{buf: body, maxDepth: c.maxDepth}
	root, err := d.node(0)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.buf) {
		return nil, invalid("trailing data after tree", d.pos)
	}
	return root, nil
}

func invalid(reason string, offset int) error {
	err := zerr.Wrap(domain.ErrTreeDecodeFailed, reason)
	return zerr.With(err, "offset", offset)
}

type decoder struct {
	buf      []byte
	pos      int
	maxDepth int
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.pos
}

func (d *decoder) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.buf[d.pos:])
	if n <= 0 {
		return 0, invalid("bad uvarint", d.pos)
	}
	d.pos += n
	return v, nil
}

func (d *decoder) varint() (int64, error) {
	v, n := binary.Varint(d.buf[d.pos:])
	if n <= 0 {
		return 0, invalid("bad varint", d.pos)
	}
	d.pos += n
	return v, nil
}

func (d *decoder) str() (string, error) {
	n, err := d.uvarint()
	if err != nil {
		return "", err
	}
	if n > uint64(d.remaining()) {
		return "", invalid("string length exceeds data", d.pos)
	}
	s := string(d.buf[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

// count reads an element count and rejects counts that could not possibly
// fit in the remaining data.
func (d *decoder) count(minElemLen int) (int, error) {
	n, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.remaining()/minElemLen) {
		return 0, invalid("element count exceeds data", d.pos)
	}
	return int(n), nil
}

func (d *decoder) node(depth int) (*domain.Node, error) {
	if depth >= d.maxDepth {
		return nil, zerr.With(errors.Join(domain.ErrTreeDecodeFailed, domain.ErrTreeTooDeep), "max_depth", d.maxDepth)
	}

	kind, err := d.str()
	if err != nil {
		return nil, err
	}
	value, err := d.str()
	if err != nil {
		return nil, err
	}
	line, err := d.varint()
	if err != nil {
		return nil, err
	}

	n := &domain.Node{Kind: kind, Value: value, Line: int(line)}

	attrCount, err := d.count(minAttrLen)
	if err != nil {
		return nil, err
	}
	if attrCount > 0 {
		n.Attrs = make(map[string]string, attrCount)
		for range attrCount {
			key, err := d.str()
			if err != nil {
				return nil, err
			}
			val, err := d.str()
			if err != nil {
				return nil, err
			}
			n.Attrs[key] = val
		}
	}

	childCount, err := d.count(minNodeLen)
	if err != nil {
		return nil, err
	}
	if childCount > 0 {
		n.Children = make([]*domain.Node, 0, childCount)
		for range childCount {
			child, err := d.node(depth + 1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}

	return n, nil
}
