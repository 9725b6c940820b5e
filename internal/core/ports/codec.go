package ports

import "go.trai.ch/stylecache/internal/core/domain"

// TreeCodec serializes parsed trees for the cache.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type TreeCodec interface {
	// Encode serializes a tree.
	Encode(root *domain.Node) ([]byte, error)
	// Decode restores a tree previously produced by Encode.
	Decode(data []byte) (*domain.Node, error)
}
