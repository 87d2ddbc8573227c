package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/adapters/config" //nolint:depguard // Settings supply the database location
	"go.trai.ch/comma/internal/adapters/logger" //nolint:depguard // Stale database warnings
	"go.trai.ch/comma/internal/core/ports"
)

const (
	// IndexNodeID is the unique identifier for the package index Graft node.
	IndexNodeID graft.ID = "adapter.nix.index"
	// ManagerNodeID is the unique identifier for the package manager Graft node.
	ManagerNodeID graft.ID = "adapter.nix.manager"
)

func init() {
	graft.Register(graft.Node[ports.PackageIndex]{
		ID:        IndexNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageIndex, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewIndexFromConfig(log, loader), nil
		},
	})

	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageManager, error) {
			return NewManager(), nil
		},
	})
}
