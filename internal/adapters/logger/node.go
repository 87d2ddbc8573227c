package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/comma/internal/adapters/detector" //nolint:depguard // Color profile follows the terminal
	"go.trai.ch/comma/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// ControlNodeID is the unique identifier for the concrete logger Graft node.
	ControlNodeID graft.ID = "adapter.logger.instance"
	// LogControlNodeID is the unique identifier for the log control Graft node.
	LogControlNodeID graft.ID = "adapter.logger.control"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ControlNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (*Logger, error) {
			env, err := graft.Dep[detector.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return New(env.ColorProfile), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ControlNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})

	graft.Register(graft.Node[ports.LogControl]{
		ID:        LogControlNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ControlNodeID},
		Run: func(ctx context.Context) (ports.LogControl, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
