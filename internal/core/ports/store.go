package ports

import "go.trai.ch/stylecache/internal/core/domain"

// CacheStore persists encoded trees keyed by source location and fingerprint.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// EntryPath returns where the cache entry for source lives under root.
	EntryPath(root, source string) (string, error)

	// Read returns the payload stored at entryPath if, and only if, it was
	// written by the running format version for the given fingerprint.
	// Any other outcome, including an unreadable file, reports false.
	Read(entryPath string, fingerprint domain.Fingerprint) ([]byte, bool)

	// Write stores payload at entryPath. It never fails loudly: it reports
	// whether the entry was written and leaves existing entries intact on failure.
	Write(entryPath string, fingerprint domain.Fingerprint, payload []byte) bool
}
