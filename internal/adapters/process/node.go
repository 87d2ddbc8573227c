package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/core/ports"
)

const (
	// TableNodeID is the unique identifier for the process table Graft node.
	TableNodeID graft.ID = "adapter.process.table"
	// ReplacerNodeID is the unique identifier for the process replacer Graft node.
	ReplacerNodeID graft.ID = "adapter.process.replacer"
)

func init() {
	graft.Register(graft.Node[ports.ProcessTable]{
		ID:        TableNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessTable, error) {
			return NewTable(), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessReplacer]{
		ID:        ReplacerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessReplacer, error) {
			return NewReplacer(), nil
		},
	})
}
