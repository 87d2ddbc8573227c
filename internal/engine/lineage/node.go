package lineage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/adapters/process" //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/core/ports"
)

// NodeID is the unique identifier for the lineage detector Graft node.
const NodeID graft.ID = "engine.lineage"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.TableNodeID},
		Run: func(ctx context.Context) (*Detector, error) {
			table, err := graft.Dep[ports.ProcessTable](ctx)
			if err != nil {
				return nil, err
			}
			return New(table), nil
		},
	})
}
