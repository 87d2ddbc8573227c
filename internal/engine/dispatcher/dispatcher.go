// Package dispatcher acts on resolved packages: it runs, installs or prints
// them, or opens a shell where they are available.
//
// Every mode that replaces the current process flushes the choice cache
// first, since nothing runs after a successful replacement.
package dispatcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
)

// ShellDetector finds the interactive shell in a process's ancestry.
type ShellDetector interface {
	DetectShell(pid int) (string, bool, error)
}

// Request describes one dispatch.
type Request struct {
	Mode domain.Mode
	// Command is the executable name looked up under bin/ of the package.
	Command string
	// Args are passed verbatim after the command in run mode.
	Args []string
	// Choices holds one resolved package per command. Only shell mode uses
	// more than the first.
	Choices []domain.PackageChoice
	Source  domain.PackageSource
	// Confirm asks before running the executable.
	Confirm bool
}

// Dispatcher carries out a Request.
type Dispatcher struct {
	manager   ports.PackageManager
	replacer  ports.ProcessReplacer
	shells    ShellDetector
	confirmer ports.Confirmer
	logger    ports.Logger
	tracer    ports.Tracer
	out       io.Writer
	pid       func() int
}

// New creates a Dispatcher writing printed paths to stdout.
func New(
	manager ports.PackageManager,
	replacer ports.ProcessReplacer,
	shells ShellDetector,
	confirmer ports.Confirmer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Dispatcher {
	return &Dispatcher{
		manager:   manager,
		replacer:  replacer,
		shells:    shells,
		confirmer: confirmer,
		logger:    logger,
		tracer:    tracer,
		out:       os.Stdout,
		pid:       os.Getpid,
	}
}

// WithOutput sets the writer print-path mode writes to.
func (d *Dispatcher) WithOutput(w io.Writer) *Dispatcher {
	d.out = w
	return d
}

// WithPID overrides the pid the shell search starts from.
func (d *Dispatcher) WithPID(pid func() int) *Dispatcher {
	d.pid = pid
	return d
}

// Dispatch executes req. Run, shell and install modes do not return on
// success; print-path and a declined confirmation return nil.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, cache ports.ChoiceCache) (err error) {
	ctx, span := d.tracer.Start(ctx, "dispatch")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("mode", req.Mode.String())

	if len(req.Choices) == 0 {
		return domain.ErrNoCommand
	}

	switch req.Mode {
	case domain.ModeRun:
		return d.run(ctx, req, cache)
	case domain.ModePrintPath:
		path, err := d.resolvePath(ctx, req, cache)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(d.out, path)
		return err
	case domain.ModeShell:
		return d.shell(req, cache)
	case domain.ModeInstall:
		argv := d.manager.InstallArgv(req.Choices[0].AttrName())
		return d.handoff(argv[0], argv, cache)
	default:
		return zerr.With(domain.ErrUnknownMode, "mode", req.Mode.String())
	}
}

func (d *Dispatcher) run(ctx context.Context, req Request, cache ports.ChoiceCache) error {
	path, err := d.resolvePath(ctx, req, cache)
	if err != nil {
		return err
	}

	if req.Confirm {
		ok, err := d.confirmer.Confirm(fmt.Sprintf("Run %s?", path), true)
		if err != nil {
			return err
		}
		if !ok {
			d.logger.Debug("run declined")
			return nil
		}
	}

	argv := append([]string{req.Command}, req.Args...)
	return d.handoff(path, argv, cache)
}

func (d *Dispatcher) shell(req Request, cache ports.ChoiceCache) error {
	name, ok, err := d.shells.DetectShell(d.pid())
	switch {
	case err != nil:
		d.logger.Debug(fmt.Sprintf("shell detection failed, using %s: %v", domain.DefaultShell, err))
		name = domain.DefaultShell
	case !ok:
		d.logger.Debug(fmt.Sprintf("none of %s found in process ancestry, using %s",
			strings.Join(domain.KnownShells(), ", "), domain.DefaultShell))
		name = domain.DefaultShell
	}

	derivations := make([]string, 0, len(req.Choices))
	for _, c := range req.Choices {
		derivations = append(derivations, c.Derivation)
	}

	argv := d.manager.ShellArgv(req.Source, derivations, []string{name})
	return d.handoff(argv[0], argv, cache)
}

// resolvePath returns the executable of the first choice, building the
// package when the cached path is missing or no longer exists.
func (d *Dispatcher) resolvePath(ctx context.Context, req Request, cache ports.ChoiceCache) (string, error) {
	choice := req.Choices[0]

	if choice.Path != "" {
		if _, err := os.Stat(choice.Path); err == nil {
			return choice.Path, nil
		}
		d.logger.Debug(fmt.Sprintf("cached path %s is gone, rebuilding %s", choice.Path, choice.Derivation))
	}

	ctx, span := d.tracer.Start(ctx, "build")
	defer span.End()
	span.SetAttribute("derivation", choice.Derivation)

	out, err := d.manager.Build(ctx, req.Source, choice.Derivation)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	path := filepath.Join(out, "bin", req.Command)
	if _, err := os.Stat(path); err != nil {
		err = zerr.With(zerr.With(domain.ErrBuildFailed, "derivation", choice.Derivation), "executable", path)
		span.RecordError(err)
		return "", err
	}

	cache.Update(req.Command, choice.WithPath(path).Entry())
	return path, nil
}

// handoff flushes the cache and replaces the current process. A failed flush
// is reported but does not prevent the handoff.
func (d *Dispatcher) handoff(path string, argv []string, cache ports.ChoiceCache) error {
	if err := cache.Flush(); err != nil {
		d.logger.Warn(fmt.Sprintf("choice cache not saved: %v", err))
	}
	return d.replacer.Replace(path, argv)
}
