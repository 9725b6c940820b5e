package ports

import "go.trai.ch/stylecache/internal/core/domain"

// ParseContext carries everything the parser needs besides the source text.
type ParseContext struct {
	// Filename is the source being parsed, for error reporting.
	Filename string
	// LoadPaths are the directories imports are resolved against.
	LoadPaths []string
	// Options are the parser settings from domain.Options.Parser.
	Options map[string]any
	// Importer resolves @import references found while parsing.
	Importer ImportResolver
}

// Parser turns stylesheet text into a tree.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse parses text. Malformed input is reported as a *domain.SyntaxError.
	Parse(text string, pctx ParseContext) (*domain.Node, error)
}
