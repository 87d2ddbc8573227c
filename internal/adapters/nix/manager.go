package nix

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/zerr"
)

// experimentalFeatures is passed on every nix invocation so that flake
// references work regardless of the user's nix.conf.
var experimentalFeatures = []string{"--extra-experimental-features", "nix-command flakes"}

const channelExpr = "<nixpkgs>"

// Manager implements ports.PackageManager using the Nix CLI.
type Manager struct {
	nix    string
	nixEnv string
}

// NewManager creates a new PackageManager backed by Nix CLI.
func NewManager() *Manager {
	return &Manager{nix: "nix", nixEnv: "nix-env"}
}

// newManagerWithTools creates a Manager that runs the given executables (used for testing).
func newManagerWithTools(nix, nixEnv string) *Manager {
	return &Manager{nix: nix, nixEnv: nixEnv}
}

// Build realises the derivation in the Nix store and returns the store path
// of its primary output.
func (m *Manager) Build(ctx context.Context, src domain.PackageSource, derivation string) (string, error) {
	args := slices.Concat(experimentalFeatures, []string{"build", "--json", "--no-link"}, installable(src, derivation))

	//nolint:gosec // derivation comes from the package index or the user's own cache
	cmd := exec.CommandContext(ctx, m.nix, args...)

	output, err := cmd.Output()
	if err != nil {
		nixErr := zerr.Wrap(err, domain.ErrBuildFailed.Error())
		nixErr = zerr.With(nixErr, "derivation", derivation)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", zerr.With(nixErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", nixErr
	}

	return parseBuildResults(output, derivation)
}

// ShellArgv returns the argv that opens a shell with all derivations
// available and runs command inside it.
func (m *Manager) ShellArgv(src domain.PackageSource, derivations, command []string) []string {
	argv := slices.Concat([]string{m.nix}, experimentalFeatures, []string{"shell"})

	if src.Channel {
		argv = append(argv, "-f", channelExpr)
		argv = append(argv, derivations...)
	} else {
		for _, d := range derivations {
			argv = append(argv, src.Flake+"#"+d)
		}
	}

	if len(command) > 0 {
		argv = append(argv, "--command")
		argv = append(argv, command...)
	}

	return argv
}

// InstallArgv returns the argv that installs attrName into the user profile.
func (m *Manager) InstallArgv(attrName string) []string {
	return []string{m.nixEnv, "-f", channelExpr, "-iA", attrName}
}

func installable(src domain.PackageSource, derivation string) []string {
	if src.Channel {
		return []string{"-f", channelExpr, derivation}
	}
	return []string{src.Flake + "#" + derivation}
}

// parseBuildResults extracts the primary output path from `nix build --json`.
// The "out" output is preferred, then "bin", then the first output by name.
func parseBuildResults(output []byte, derivation string) (string, error) {
	var results buildResults
	if err := json.Unmarshal(output, &results); err != nil {
		parseErr := zerr.Wrap(err, "failed to parse nix build JSON output")
		return "", zerr.With(parseErr, "derivation", derivation)
	}

	if len(results) == 0 {
		emptyErr := zerr.With(domain.ErrBuildFailed, "derivation", derivation)
		return "", zerr.With(emptyErr, "reason", "empty build results from nix build")
	}

	outputs := results[0].Outputs
	for _, name := range []string{"out", "bin"} {
		if p := outputs[name]; p != "" {
			return p, nil
		}
	}

	names := make([]string, 0, len(outputs))
	for name, p := range outputs {
		if p != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		outErr := zerr.With(domain.ErrBuildFailed, "derivation", derivation)
		return "", zerr.With(outErr, "reason", "no outputs found in build results")
	}
	slices.Sort(names)

	return outputs[names[0]], nil
}
