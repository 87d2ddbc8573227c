package ports

import "go.trai.ch/comma/internal/core/domain"

// ProcessTable reads rows of the operating system's process table.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessTable interface {
	// Lookup returns the name and parent pid of pid.
	Lookup(pid int) (domain.Process, error)
}

// ProcessReplacer replaces the current process image with another program.
type ProcessReplacer interface {
	// Replace executes path with argv, inheriting the environment. On success
	// it never returns; any returned error means the handoff did not happen.
	Replace(path string, argv []string) error
}
