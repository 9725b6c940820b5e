package ports

import "go.trai.ch/stylecache/internal/core/domain"

// SourceReader loads stylesheet sources.
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=source.go
type SourceReader interface {
	// ReadSource reads the file at path and fingerprints its content.
	ReadSource(path string) (*domain.SourceDocument, error)
}
