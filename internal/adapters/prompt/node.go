package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/adapters/detector" //nolint:depguard // Terminal capabilities
	"go.trai.ch/comma/internal/adapters/logger"   //nolint:depguard // Non-interactive warning
	"go.trai.ch/comma/internal/core/ports"
)

// NodeID is the unique identifier for the confirmer Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Confirmer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Confirmer, error) {
			env, err := graft.Dep[detector.Environment](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(os.Stdin, os.Stderr, env, log), nil
		},
	})
}
