package picker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/core/ports"
)

// NodeID is the unique identifier for the picker Graft node.
const NodeID graft.ID = "adapter.picker"

func init() {
	graft.Register(graft.Node[ports.Picker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Picker, error) {
			return New(), nil
		},
	})
}
