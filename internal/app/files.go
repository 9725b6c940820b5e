// Package app implements the application layer for stylecache.
package app

import (
	"context"
	"errors"

	"go.trai.ch/stylecache/internal/adapters/telemetry" //nolint:depguard // Default tracer
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// SpanTreeFor is the name of the span opened for every TreeFor call.
const SpanTreeFor = "stylecache.tree_for"

var _ ports.ImportResolver = (*Files)(nil)

// Files turns stylesheet files into trees, reusing cached trees whenever the
// source content and format version are unchanged.
type Files struct {
	source   ports.SourceReader
	store    ports.CacheStore
	codec    ports.TreeCodec
	resolver ports.ImportResolver
	parser   ports.Parser
	logger   ports.Logger
	tracer   ports.Tracer
	options  domain.Options
}

// NewFiles creates a new Files instance. The given options are merged over
// domain.DefaultOptions. A nil tracer disables tracing.
func NewFiles(
	source ports.SourceReader,
	store ports.CacheStore,
	codec ports.TreeCodec,
	resolver ports.ImportResolver,
	parser ports.Parser,
	log ports.Logger,
	tracer ports.Tracer,
	opts domain.Options,
) (*Files, error) {
	if parser == nil {
		return nil, domain.ErrMissingParser
	}
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}

	return &Files{
		source:   source,
		store:    store,
		codec:    codec,
		resolver: resolver,
		parser:   parser,
		logger:   log,
		tracer:   tracer,
		options:  domain.MergeOptions(domain.DefaultOptions(), opts),
	}, nil
}

// Options returns the effective base options.
func (f *Files) Options() domain.Options {
	return domain.MergeOptions(f.options, domain.Options{})
}

// TreeFor returns the tree for filename. opts override the base options for
// this call only.
//
// The cached tree is returned without parsing when an entry exists for the
// running format version and the current content fingerprint. Otherwise the
// file is parsed and the result is written back. Cache failures never surface
// as errors; read failures of the source and parse failures do.
func (f *Files) TreeFor(ctx context.Context, filename string, opts domain.Options) (*domain.Node, error) {
	options := domain.MergeOptions(f.options, opts)

	_, span := f.tracer.Start(ctx, SpanTreeFor, ports.WithAttribute("path", filename))
	defer span.End()

	doc, err := f.source.ReadSource(filename)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	entryPath := f.entryPath(options, filename)

	if entryPath != "" {
		if tree, ok := f.readCached(entryPath, doc.Fingerprint); ok {
			span.SetAttribute("cache.hit", true)
			return tree, nil
		}
	}
	span.SetAttribute("cache.hit", false)

	tree, err := f.parser.Parse(string(doc.Text), ports.ParseContext{
		Filename:  filename,
		LoadPaths: options.LoadPaths,
		Options:   options.Parser,
		Importer:  f,
	})
	if err != nil {
		var syntaxErr *domain.SyntaxError
		if errors.As(err, &syntaxErr) {
			syntaxErr.AddBacktraceEntry(filename)
			span.RecordError(syntaxErr)
			return nil, syntaxErr
		}

		err = zerr.With(zerr.Wrap(errors.Join(domain.ErrParseFailed, err), "failed to build tree"), "path", filename)
		span.RecordError(err)
		return nil, err
	}

	if entryPath != "" {
		span.SetAttribute("cache.written", f.writeCached(entryPath, doc.Fingerprint, tree))
	}

	return tree, nil
}

// FindImport resolves reference against loadPaths. A nil loadPaths uses the
// configured load paths.
func (f *Files) FindImport(reference string, loadPaths []string) (string, error) {
	if loadPaths == nil {
		loadPaths = f.options.LoadPaths
	}
	return f.resolver.FindImport(reference, loadPaths)
}

// entryPath returns "" when caching is off for this call.
func (f *Files) entryPath(options domain.Options, filename string) string {
	if !options.CacheEnabled() {
		f.logger.Debug("cache disabled", "path", filename)
		return ""
	}

	entryPath, err := f.store.EntryPath(options.CacheLocation, filename)
	if err != nil {
		f.logger.Debug("cache skipped", "path", filename, "error", err)
		return ""
	}
	return entryPath
}

func (f *Files) readCached(entryPath string, fp domain.Fingerprint) (*domain.Node, bool) {
	payload, ok := f.store.Read(entryPath, fp)
	if !ok {
		f.logger.Debug("cache miss", "entry", entryPath)
		return nil, false
	}

	tree, err := f.codec.Decode(payload)
	if err != nil {
		f.logger.Debug("cache entry unusable", "entry", entryPath, "error", err)
		return nil, false
	}

	f.logger.Debug("cache hit", "entry", entryPath)
	return tree, true
}

func (f *Files) writeCached(entryPath string, fp domain.Fingerprint, tree *domain.Node) bool {
	payload, err := f.codec.Encode(tree)
	if err != nil {
		f.logger.Debug("cache write skipped", "entry", entryPath, "error", err)
		return false
	}

	if !f.store.Write(entryPath, fp, payload) {
		f.logger.Debug("cache write skipped", "entry", entryPath)
		return false
	}
	return true
}
