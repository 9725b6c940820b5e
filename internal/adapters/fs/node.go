package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylecache/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the import resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the unique identifier for the source reader Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ImportResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImportResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceReader]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return NewHasher(), nil
		},
	})
}
