package domain

import (
	"maps"
	"slices"
)

// Options configures tree resolution. The zero value of each field means
// "not set" so that a partial Options can be merged over another.
type Options struct {
	// CacheLocation is the root directory holding cache entries.
	CacheLocation string
	// Cache enables reading and writing cache entries. nil means unset.
	Cache *bool
	// LoadPaths are the directories searched for imports, in order.
	LoadPaths []string
	// Parser holds parser settings, forwarded to the parser untouched.
	Parser map[string]any
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		CacheLocation: DefaultCacheDirName,
		Cache:         Bool(true),
		LoadPaths:     []string{"."},
		Parser:        map[string]any{},
	}
}

// MergeOptions returns base with every field set in override applied on top.
// Parser settings are merged key by key. Neither argument is modified.
//
//nolint:gocritic // Options is passed by value to keep callers free of aliasing
func MergeOptions(base, override Options) Options {
	merged := Options{
		CacheLocation: base.CacheLocation,
		Cache:         base.Cache,
		LoadPaths:     slices.Clone(base.LoadPaths),
		Parser:        maps.Clone(base.Parser),
	}

	if override.CacheLocation != "" {
		merged.CacheLocation = override.CacheLocation
	}
	if override.Cache != nil {
		merged.Cache = Bool(*override.Cache)
	}
	if override.LoadPaths != nil {
		merged.LoadPaths = slices.Clone(override.LoadPaths)
	}
	if len(override.Parser) > 0 {
		if merged.Parser == nil {
			merged.Parser = make(map[string]any, len(override.Parser))
		}
		maps.Copy(merged.Parser, override.Parser)
	}

	return merged
}

// CacheEnabled reports whether cache entries should be read and written.
// Unset means enabled.
func (o Options) CacheEnabled() bool {
	return o.Cache == nil || *o.Cache
}

// Bool returns a pointer to b, for filling optional Options fields.
func Bool(b bool) *bool {
	return &b
}
