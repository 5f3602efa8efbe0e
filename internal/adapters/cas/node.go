package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thumbs/internal/adapters/codec"
	"go.trai.ch/thumbs/internal/core/ports"
)

// NodeID is the unique identifier for the thumbnail store Graft node.
const NodeID graft.ID = "adapter.thumbnail_store"

func init() {
	graft.Register(graft.Node[ports.ThumbnailStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{codec.NodeID},
		Run: func(ctx context.Context) (ports.ThumbnailStore, error) {
			c, err := graft.Dep[ports.ImageCodec](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(c), nil
		},
	})
}
