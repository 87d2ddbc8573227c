// Package lineage finds the interactive shell a process was started from.
package lineage

import (
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxDepth bounds the walk in case the process table is inconsistent.
const maxDepth = 128

// Detector walks process ancestry through a process table.
type Detector struct {
	table ports.ProcessTable
}

// New creates a Detector over table.
func New(table ports.ProcessTable) *Detector {
	return &Detector{table: table}
}

// Ancestry returns pid and its ancestors, nearest first, up to but not
// including pid 0.
func (d *Detector) Ancestry(pid int) (domain.Ancestry, error) {
	var chain domain.Ancestry
	err := d.walk(pid, func(p domain.Process) bool {
		chain = append(chain, p)
		return true
	})
	return chain, err
}

// DetectShell returns the name of the nearest ancestor of pid that is a known
// shell. pid itself is not considered.
func (d *Detector) DetectShell(pid int) (string, bool, error) {
	var shell string
	err := d.walk(pid, func(p domain.Process) bool {
		if p.PID != pid && domain.IsKnownShell(p.Name) {
			shell = p.Name
			return false
		}
		return true
	})
	if err != nil {
		return "", false, err
	}
	return shell, shell != "", nil
}

// walk visits pid and its ancestors until visit returns false, pid 0 is
// reached, a pid repeats or maxDepth is exceeded.
func (d *Detector) walk(pid int, visit func(domain.Process) bool) error {
	seen := make(map[int]struct{})

	for current := pid; current != 0 && len(seen) < maxDepth; {
		if _, ok := seen[current]; ok {
			return nil
		}
		seen[current] = struct{}{}

		proc, err := d.table.Lookup(current)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrProcessLookup.Error()), "pid", current)
		}

		if !visit(proc) {
			return nil
		}
		current = proc.PPID
	}

	return nil
}
