package app

import "go.trai.ch/comma/internal/core/ports"

// Components groups the objects the CLI entry point needs.
type Components struct {
	App          *App
	Logger       ports.Logger
	LogControl   ports.LogControl
	ConfigLoader ports.ConfigLoader
}
