package fs

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // SHA-1 fingerprints are part of the cache entry format
	"errors"
	"io"
	"os"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Hasher)(nil)

// Hasher reads stylesheet sources and fingerprints their content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ReadSource reads the whole file at path while hashing it.
// Failures match domain.ErrSourceReadFailed and keep the underlying
// *fs.PathError in the chain.
func (h *Hasher) ReadSource(path string) (*domain.SourceDocument, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSourceReadFailed, err), "failed to read stylesheet"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var text bytes.Buffer
	if info, statErr := f.Stat(); statErr == nil {
		text.Grow(int(info.Size()))
	}

	hasher := sha1.New() //nolint:gosec // see import
	if _, err := io.Copy(io.MultiWriter(&text, hasher), f); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSourceReadFailed, err), "failed to read stylesheet"), "path", path)
	}

	return &domain.SourceDocument{
		Path:        path,
		Text:        text.Bytes(),
		Fingerprint: domain.FingerprintFromSum(hasher.Sum(nil)),
	}, nil
}
