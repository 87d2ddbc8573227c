// Package nix implements the package index and package manager ports on top of
// nix-locate and the Nix CLI.
package nix

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
)

const databaseHint = "either obtain a prebuilt database from https://github.com/Mic92/nix-index-database " +
	"or try updating with `nix run 'nixpkgs#nix-index' --extra-experimental-features 'nix-command flakes'`"

// Index implements ports.PackageIndex using nix-locate.
type Index struct {
	tool     string
	database string
	config   ports.ConfigLoader
	logger   ports.Logger
	now      func() time.Time
}

// NewIndexFromConfig creates a PackageIndex that reads the database location
// from the settings when the first query runs.
func NewIndexFromConfig(logger ports.Logger, config ports.ConfigLoader) *Index {
	idx := newIndexWithTool("nix-locate", logger, "")
	idx.config = config
	return idx
}

// newIndexWithTool creates an Index that runs the given executable (used for testing).
func newIndexWithTool(tool string, logger ports.Logger, database string) *Index {
	return &Index{
		tool:     tool,
		database: database,
		logger:   logger,
		now:      time.Now,
	}
}

// Candidates returns the identifiers of the packages that ship /bin/<command>,
// in the order nix-locate reports them.
func (i *Index) Candidates(ctx context.Context, command string) ([]string, error) {
	i.checkDatabase()

	//nolint:gosec // command is passed as a single argument, never through a shell
	cmd := exec.CommandContext(ctx, i.tool,
		"--top-level", "--minimal", "--at-root", "--whole-name", "/bin/"+command)

	output, err := cmd.Output()
	if err != nil {
		queryErr := zerr.Wrap(err, domain.ErrIndexQueryFailed.Error())
		queryErr = zerr.With(queryErr, "command", command)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && utf8.Valid(exitErr.Stderr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				queryErr = zerr.With(queryErr, "stderr", stderr)
			}
		}
		return nil, queryErr
	}

	candidates := parseCandidates(output)
	if len(candidates) == 0 {
		return nil, zerr.With(domain.ErrNoMatch, "command", command)
	}

	return candidates, nil
}

func parseCandidates(output []byte) []string {
	var candidates []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			candidates = append(candidates, line)
		}
	}
	return candidates
}

// checkDatabase warns when the nix-index database is missing or stale. A
// database without write permission is managed elsewhere (typically the Nix
// store, where mtimes are fixed) and is never reported as stale.
func (i *Index) checkDatabase() {
	database := i.database
	if i.config != nil {
		settings, err := i.config.Load()
		if err != nil {
			// Reported by whoever loaded the settings first.
			return
		}
		database = settings.IndexDatabase
	}
	if database == "" {
		return
	}

	info, err := os.Stat(database)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			i.logger.Warn("nix-index database does not exist, " + databaseHint)
		}
		return
	}

	if info.Mode().Perm()&0o222 == 0 {
		return
	}

	if i.now().Sub(info.ModTime()) > domain.IndexMaxAge {
		i.logger.Warn("nix-index database is older than 30 days, " + databaseHint)
	}
}
