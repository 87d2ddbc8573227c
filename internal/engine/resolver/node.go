package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/adapters/nix"       //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/adapters/picker"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/adapters/telemetry" //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{nix.IndexNodeID, picker.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			index, err := graft.Dep[ports.PackageIndex](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Picker](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(index, p, tracer), nil
		},
	})
}
