package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/core/ports"
)

// NodeID is the unique identifier for the choice cache loader Graft node.
const NodeID graft.ID = "adapter.choice_cache"

func init() {
	graft.Register(graft.Node[ports.CacheLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheLoader, error) {
			return NewFileLoader(), nil
		},
	})
}
