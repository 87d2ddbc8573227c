package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/adapters/logger"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/adapters/nix"       //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/adapters/process"   //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/adapters/prompt"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/adapters/telemetry" //nolint:depguard // Wired in engine layer
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/comma/internal/engine/lineage"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nix.ManagerNodeID,
			process.ReplacerNodeID,
			lineage.NodeID,
			prompt.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Dispatcher, error) {
	manager, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}

	replacer, err := graft.Dep[ports.ProcessReplacer](ctx)
	if err != nil {
		return nil, err
	}

	shells, err := graft.Dep[*lineage.Detector](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(manager, replacer, shells, confirmer, log, tracer), nil
}
