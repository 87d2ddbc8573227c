// Package commands implements the command line interface of comma.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/comma/internal/app"
	"go.trai.ch/comma/internal/build"
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for comma.
type CLI struct {
	app     Application
	logs    ports.LogControl
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, argv []string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs ports.LogControl) *CLI {
	c := &CLI{
		app:  a,
		logs: logs,
	}

	rootCmd := &cobra.Command{
		Use:   "comma [flags] <command> [args...]",
		Short: "Run software without installing it",
		Long: "comma finds the nix package providing <command>, builds it and runs it.\n" +
			"Choices are remembered, so the next run skips the lookup.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.configureLogging,
		RunE:              c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.Flags()
	// Everything after the command belongs to the command.
	flags.SetInterspersed(false)

	flags.BoolP("install", "i", false, "Install the package into the user profile")
	flags.BoolP("shell", "s", false, "Open a shell with the packages providing every given command")
	flags.BoolP("print-path", "x", false, "Print the path of the executable and exit")
	flags.BoolP("print-packages", "p", false, "List the packages providing the command and exit")
	flags.StringP("picker", "P", "", "Program used to choose among several packages (default \"fzy\", env COMMA_PICKER)")
	flags.StringP("nixpkgs-flake", "F", "",
		"Flake reference packages are taken from (default \"nixpkgs\", env COMMA_NIXPKGS_FLAKE)")
	flags.StringP("cache-level", "c", "", "What to cache: none, choice or path (default \"path\", env COMMA_CACHE_LEVEL)")
	flags.BoolP("delete-entry", "d", false, "Forget the cached choice for the command before resolving")
	flags.BoolP("empty-cache", "e", false, "Forget every cached choice")
	flags.Bool("confirm", false, "Ask before running the executable (env COMMA_CONFIRM)")
	flags.BoolP("verbose", "v", false, "Print debug output, including step timings")
	flags.String("log-format", "pretty", "Log format: pretty or json")

	rootCmd.MarkFlagsMutuallyExclusive("install", "shell", "print-path", "print-packages")

	rootCmd.InitDefaultVersionFlag()
	flags.Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	flags.Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	var json bool
	switch format {
	case "pretty":
	case "json":
		json = true
	default:
		return zerr.With(domain.ErrInvalidLogFormat, "log_format", format)
	}

	if c.logs != nil {
		c.logs.SetJSON(json)
		c.logs.SetVerbose(verbose)
	}
	return nil
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	install, _ := flags.GetBool("install")
	shell, _ := flags.GetBool("shell")
	printPath, _ := flags.GetBool("print-path")
	printPackages, _ := flags.GetBool("print-packages")
	picker, _ := flags.GetString("picker")
	flake, _ := flags.GetString("nixpkgs-flake")
	cacheLevel, _ := flags.GetString("cache-level")
	deleteEntry, _ := flags.GetBool("delete-entry")
	emptyCache, _ := flags.GetBool("empty-cache")
	confirm, _ := flags.GetBool("confirm")

	mode := domain.ModeRun
	switch {
	case install:
		mode = domain.ModeInstall
	case shell:
		mode = domain.ModeShell
	case printPath:
		mode = domain.ModePrintPath
	}

	return c.app.Run(cmd.Context(), args, app.RunOptions{
		Mode:          mode,
		Picker:        picker,
		NixpkgsFlake:  flake,
		CacheLevel:    cacheLevel,
		Confirm:       confirm,
		DeleteEntry:   deleteEntry,
		EmptyCache:    emptyCache,
		PrintPackages: printPackages,
	})
}
