package nix

import (
	"time"

	"go.trai.ch/comma/internal/core/ports"
)

// NewIndexWithToolForTest creates an Index running tool instead of nix-locate.
func NewIndexWithToolForTest(tool string, logger ports.Logger, database string, now func() time.Time) *Index {
	idx := newIndexWithTool(tool, logger, database)
	idx.now = now
	return idx
}

// NewManagerWithToolsForTest creates a Manager running the given executables.
func NewManagerWithToolsForTest(nix, nixEnv string) *Manager {
	return newManagerWithTools(nix, nixEnv)
}

// ParseBuildResultsForTest exposes the nix build JSON parser.
var ParseBuildResultsForTest = parseBuildResults

// ParseCandidatesForTest exposes the nix-locate output parser.
var ParseCandidatesForTest = parseCandidates

// NewIndexFromConfigWithToolForTest creates a config-backed Index running tool instead of nix-locate.
func NewIndexFromConfigWithToolForTest(tool string, logger ports.Logger, config ports.ConfigLoader) *Index {
	idx := NewIndexFromConfig(logger, config)
	idx.tool = tool
	return idx
}
