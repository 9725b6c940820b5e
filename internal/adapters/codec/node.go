package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylecache/internal/core/ports"
)

// NodeID is the unique identifier for the tree codec Graft node.
const NodeID graft.ID = "adapter.tree_codec"

func init() {
	graft.Register(graft.Node[ports.TreeCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeCodec, error) {
			return New(), nil
		},
	})
}
