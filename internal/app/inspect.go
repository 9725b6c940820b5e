package app

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/stylecache/internal/core/domain"
)

// EntryState describes how a cache entry relates to its source.
type EntryState int

const (
	// EntryMissing means no entry file exists for the source.
	EntryMissing EntryState = iota
	// EntryStale means an entry exists but would not be used: it was written
	// by another format version, for other content, or is unreadable.
	EntryStale
	// EntryFresh means the next TreeFor call would be served from the entry.
	EntryFresh
	// EntryDisabled means caching is switched off, so no entry would be read
	// or written regardless of what is on disk.
	EntryDisabled
)

func (s EntryState) String() string {
	switch s {
	case EntryMissing:
		return "missing"
	case EntryStale:
		return "stale"
	case EntryFresh:
		return "fresh"
	case EntryDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// EntryStatus reports the cache entry of one source file.
type EntryStatus struct {
	Source      string
	Entry       string
	Fingerprint domain.Fingerprint
	State       EntryState
}

// Inspect reports the cache entry for filename without parsing or writing anything.
// When the components' options disable caching, the entry is reported as
// EntryDisabled without being read.
func (c *Components) Inspect(filename string) (EntryStatus, error) {
	doc, err := c.Source.ReadSource(filename)
	if err != nil {
		return EntryStatus{}, err
	}

	entry, err := c.Store.EntryPath(c.Options.CacheLocation, filename)
	if err != nil {
		return EntryStatus{}, err
	}

	status := EntryStatus{
		Source:      filename,
		Entry:       entry,
		Fingerprint: doc.Fingerprint,
		State:       EntryMissing,
	}
	if !c.Options.CacheEnabled() {
		status.State = EntryDisabled
		return status, nil
	}

	if payload, ok := c.Store.Read(entry, doc.Fingerprint); ok {
		if _, err := c.Codec.Decode(payload); err == nil {
			status.State = EntryFresh
			return status, nil
		}
	}

	if _, err := os.Stat(entry); err == nil || !errors.Is(err, fs.ErrNotExist) {
		status.State = EntryStale
	}
	return status, nil
}
