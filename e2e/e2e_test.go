//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var commaBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "comma-e2e-*")
	if err != nil {
		panic(err)
	}

	commaBinary = filepath.Join(tmpDir, "comma")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", commaBinary, "./cmd/comma")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build comma binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E isolates every script: fake nix tools from $WORK/bin shadow the
// real ones and all per-user state lives under $WORK.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	fakeBin := filepath.Join(env.WorkDir, "bin")
	binDir := filepath.Dir(commaBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", fakeBin+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_STATE_HOME", filepath.Join(env.WorkDir, ".state"))
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
	env.Setenv("XDG_CACHE_HOME", filepath.Join(env.WorkDir, ".cache"))
	env.Setenv("NIX_PATH", "")
	env.Setenv("NIX_INDEX_DATABASE", filepath.Join(env.WorkDir, "index", "files"))
	env.Setenv("COMMA_PICKER", "")
	env.Setenv("COMMA_CACHE_LEVEL", "")

	return nil
}
