package app

import (
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
)

// Components contains all the initialized application components.
// The parser is supplied by the caller, so the facade is built on demand.
type Components struct {
	Logger   ports.Logger
	Options  domain.Options
	Store    ports.CacheStore
	Codec    ports.TreeCodec
	Source   ports.SourceReader
	Resolver ports.ImportResolver
	Tracer   ports.Tracer
}

// NewFiles builds the Files facade around parser.
func (c *Components) NewFiles(parser ports.Parser) (*Files, error) {
	return NewFiles(c.Source, c.Store, c.Codec, c.Resolver, parser, c.Logger, c.Tracer, c.Options)
}

// LoadOptions returns the options configured for cwd merged over the defaults.
func LoadOptions(loader ports.ConfigLoader, cwd string) (domain.Options, error) {
	opts, err := loader.Load(cwd)
	if err != nil {
		return domain.Options{}, err
	}
	return domain.MergeOptions(domain.DefaultOptions(), opts), nil
}
