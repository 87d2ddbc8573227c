package process

import (
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// execFn replaces the process image. It is a variable so tests can intercept
// the handoff.
var execFn = unix.Exec

// Replacer implements ports.ProcessReplacer with execve(2).
type Replacer struct{}

// NewReplacer creates a Replacer.
func NewReplacer() *Replacer {
	return &Replacer{}
}

// Replace executes path with argv and the current environment in place of the
// running process. Bare program names are looked up in PATH. It only returns
// on failure.
func (r *Replacer) Replace(path string, argv []string) error {
	resolved := path
	if filepath.Base(path) == path {
		p, err := exec.LookPath(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "program", path)
		}
		resolved = p
	}

	if err := execFn(resolved, argv, os.Environ()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "program", resolved)
	}

	return nil
}
