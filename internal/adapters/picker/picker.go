// Package picker implements interactive disambiguation through an external
// fuzzy-finder program.
package picker

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/zerr"
)

// Picker implements ports.Picker by piping candidates to a program such as fzy.
type Picker struct {
	stderr *os.File
}

// New creates a Picker whose UI is drawn on the caller's terminal.
func New() *Picker {
	return &Picker{stderr: os.Stderr}
}

// Select writes candidates newline-joined to the program's stdin and returns
// what it printed, trimmed. An empty answer means the user aborted. The
// program's exit status is not consulted.
func (p *Picker) Select(ctx context.Context, program string, candidates []string) (string, bool, error) {
	//nolint:gosec // the picker program is configured by the user
	cmd := exec.CommandContext(ctx, program)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n"))
	cmd.Stderr = p.stderr

	var stdout strings.Builder
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrPickerSpawn.Error()), "picker", program)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrPickerSpawn.Error()), "picker", program)
		}
	}

	out := stdout.String()
	if out == "" {
		return "", false, nil
	}
	if !utf8.ValidString(out) {
		return "", false, zerr.With(domain.ErrPickerOutput, "picker", program)
	}

	choice := strings.TrimSpace(out)
	return choice, choice != "", nil
}
