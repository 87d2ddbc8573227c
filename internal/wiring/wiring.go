// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/comma/internal/adapters/cache"
	_ "go.trai.ch/comma/internal/adapters/config"
	_ "go.trai.ch/comma/internal/adapters/detector"
	_ "go.trai.ch/comma/internal/adapters/logger"
	_ "go.trai.ch/comma/internal/adapters/nix"
	_ "go.trai.ch/comma/internal/adapters/picker"
	_ "go.trai.ch/comma/internal/adapters/process"
	_ "go.trai.ch/comma/internal/adapters/prompt"
	_ "go.trai.ch/comma/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/comma/internal/app"
	_ "go.trai.ch/comma/internal/engine/dispatcher"
	_ "go.trai.ch/comma/internal/engine/lineage"
	_ "go.trai.ch/comma/internal/engine/resolver"
)
