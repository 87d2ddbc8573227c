// Package detector inspects the terminal the CLI runs in.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/comma/internal/ui/output"
	"golang.org/x/term"
)

// Environment describes the standard streams and CI status of the process.
type Environment struct {
	StdinTTY  bool
	StderrTTY bool
	CI        bool
}

// DetectEnvironment inspects stdin, stderr and the CI variable.
func DetectEnvironment() Environment {
	return Environment{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StderrTTY: term.IsTerminal(int(os.Stderr.Fd())),
		CI:        isCI(os.Getenv("CI")),
	}
}

func isCI(value string) bool {
	return value == "true" || value == "1"
}

// Interactive reports whether a question can be answered by a person.
func (e Environment) Interactive() bool {
	return e.StdinTTY && !e.CI
}

// ColorProfile returns the color profile for diagnostics written to stderr.
func (e Environment) ColorProfile() termenv.Profile {
	switch {
	case e.CI:
		return output.ColorProfileANSI()
	case !e.StderrTTY:
		return output.ColorProfileNone()
	default:
		return output.ColorProfile()
	}
}
