// Package process reads the kernel process table and replaces the running
// process image.
package process

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/zerr"
)

// Table implements ports.ProcessTable over procfs.
type Table struct {
	root string
}

// NewTable creates a Table reading from /proc.
func NewTable() *Table {
	return &Table{root: "/proc"}
}

// NewTableWithRoot creates a Table reading from a procfs-shaped tree at root.
func NewTableWithRoot(root string) *Table {
	return &Table{root: root}
}

// Lookup returns the name and parent of pid from /proc/<pid>/status.
func (t *Table) Lookup(pid int) (domain.Process, error) {
	path := filepath.Join(t.root, strconv.Itoa(pid), "status")

	//nolint:gosec // path is built from a numeric pid
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Process{}, zerr.With(zerr.Wrap(err, domain.ErrProcessLookup.Error()), "pid", pid)
	}

	proc, err := parseStatus(data)
	if err != nil {
		return domain.Process{}, zerr.With(zerr.Wrap(err, domain.ErrProcessLookup.Error()), "pid", pid)
	}
	proc.PID = pid

	return proc, nil
}

func parseStatus(data []byte) (domain.Process, error) {
	var (
		proc      domain.Process
		hasName   bool
		hasParent bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			proc.Name = value
			hasName = true
		case "PPid":
			ppid, err := strconv.Atoi(value)
			if err != nil {
				return proc, zerr.With(zerr.Wrap(err, "malformed PPid field"), "value", value)
			}
			proc.PPID = ppid
			hasParent = true
		}

		if hasName && hasParent {
			return proc, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return proc, err
	}

	return proc, zerr.New("status is missing the Name or PPid field")
}
