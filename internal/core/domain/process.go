package domain

import "slices"

// Process is one row of the operating system's process table.
type Process struct {
	PID  int
	PPID int
	Name string
}

// Ancestry is an ordered chain of processes walking from a child towards pid 0.
type Ancestry []Process

// Names returns the process names in walk order.
func (a Ancestry) Names() []string {
	names := make([]string, 0, len(a))
	for _, p := range a {
		names = append(names, p.Name)
	}
	return names
}

// knownShells lists the interactive shells recognized in a process ancestry.
var knownShells = []string{
	"ash",
	"bash",
	"dash",
	"elvish",
	"fish",
	"ksh",
	"mksh",
	"nu",
	"oksh",
	"pwsh",
	"tcsh",
	"xonsh",
	"zsh",
}

// IsKnownShell reports whether name is an interactive shell comma can open.
func IsKnownShell(name string) bool {
	return slices.Contains(knownShells, name)
}

// KnownShells returns a copy of the recognized shell names.
func KnownShells() []string {
	return slices.Clone(knownShells)
}
