// Package app implements the application layer for comma.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/comma/internal/adapters/cache" //nolint:depguard // Cache variants are chosen per run
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/comma/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// Resolver maps a command to the package providing it.
type Resolver interface {
	Resolve(
		ctx context.Context,
		command, picker string,
		cache ports.ChoiceCache,
		invalidate bool,
	) (domain.PackageChoice, error)
	Candidates(ctx context.Context, command string) ([]string, error)
}

// Dispatcher acts on resolved packages.
type Dispatcher interface {
	Dispatch(ctx context.Context, req dispatcher.Request, cache ports.ChoiceCache) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	cacheLoader  ports.CacheLoader
	resolver     Resolver
	dispatcher   Dispatcher
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	cacheLoader ports.CacheLoader,
	resolver Resolver,
	dispatcher Dispatcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		cacheLoader:  cacheLoader,
		resolver:     resolver,
		dispatcher:   dispatcher,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer used for package listings.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions holds the per-invocation flags. Zero values fall back to the
// loaded settings.
type RunOptions struct {
	Mode domain.Mode
	// Picker overrides the configured picker program.
	Picker string
	// NixpkgsFlake overrides the configured flake reference.
	NixpkgsFlake string
	// CacheLevel overrides the configured cache level ("none", "choice", "path").
	CacheLevel string
	// Confirm enables the confirmation gate before run.
	Confirm bool
	// DeleteEntry invalidates the cached entry of each command before resolving.
	DeleteEntry bool
	// EmptyCache removes every cached entry before anything else.
	EmptyCache bool
	// PrintPackages lists the candidate packages instead of dispatching.
	PrintPackages bool
}

// Run resolves argv and dispatches it. In shell mode every token of argv is
// a command; otherwise argv[0] is the command and the rest are its arguments.
func (a *App) Run(ctx context.Context, argv []string, opts RunOptions) error {
	settings, err := a.settings(opts)
	if err != nil {
		return err
	}

	choices := a.openCache(settings.CacheLevel)
	defer func() {
		if flushErr := choices.Flush(); flushErr != nil {
			a.logger.Warn(fmt.Sprintf("choice cache not saved: %v", flushErr))
		}
	}()

	if opts.EmptyCache {
		choices.Clear()
		a.logger.Debug("choice cache emptied")
	}

	if len(argv) == 0 {
		if opts.EmptyCache {
			return nil
		}
		return domain.ErrNoCommand
	}

	if opts.PrintPackages {
		return a.printPackages(ctx, argv[0])
	}

	commands, args := argv[:1], argv[1:]
	if opts.Mode == domain.ModeShell {
		commands, args = argv, nil
	}

	resolved := make([]domain.PackageChoice, 0, len(commands))
	for _, command := range commands {
		choice, err := a.resolver.Resolve(ctx, command, settings.Picker, choices, opts.DeleteEntry)
		if err != nil {
			return err
		}
		a.logger.Debug(fmt.Sprintf("%s is provided by %s", command, choice.Derivation))
		resolved = append(resolved, choice)
	}

	return a.dispatcher.Dispatch(ctx, dispatcher.Request{
		Mode:    opts.Mode,
		Command: commands[0],
		Args:    args,
		Choices: resolved,
		Source:  settings.Source(),
		Confirm: settings.Confirm,
	}, choices)
}

// settings loads the configuration and applies the flag overrides.
func (a *App) settings(opts RunOptions) (domain.Settings, error) {
	settings, err := a.configLoader.Load()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Picker != "" {
		settings.Picker = opts.Picker
	}
	if opts.NixpkgsFlake != "" {
		settings.NixpkgsFlake = opts.NixpkgsFlake
	}
	if opts.CacheLevel != "" {
		level, err := domain.ParseCacheLevel(opts.CacheLevel)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "cache_level", opts.CacheLevel)
		}
		settings.CacheLevel = level
	}
	settings.Confirm = settings.Confirm || opts.Confirm

	return settings, nil
}

// openCache returns the cache variant for level. A cache that cannot be
// loaded is replaced by a disabled one.
func (a *App) openCache(level domain.CacheLevel) ports.ChoiceCache {
	if level == domain.CacheNone {
		return cache.Disabled{}
	}

	loaded, err := a.cacheLoader.Load()
	if err != nil {
		a.logger.Warn(fmt.Sprintf("continuing without choice cache: %v", err))
		return cache.Disabled{}
	}

	if level == domain.CacheChoice {
		return cache.NewChoicesOnly(loaded)
	}
	return loaded
}

func (a *App) printPackages(ctx context.Context, command string) error {
	candidates, err := a.resolver.Candidates(ctx, command)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(a.out, "Packages that contain /bin/%s:\n", command); err != nil {
		return err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(a.out, "- %s\n", c); err != nil {
			return err
		}
	}
	return nil
}
