// Package commands implements the CLI commands for the volcano solver.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano"
	"github.com/katalvlaran/volcano/config"
)

// CLI represents the command line interface for volcano.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	logger  *slog.Logger
}

// Application represents the solver behind the solve command.
type Application interface {
	SolveReader(ctx context.Context, r io.Reader, sc config.Scenario, opts ...volcano.Option) (volcano.Result, error)
}

type solverApp struct{}

func (solverApp) SolveReader(
	ctx context.Context,
	r io.Reader,
	sc config.Scenario,
	opts ...volcano.Option,
) (volcano.Result, error) {
	return volcano.SolveReader(ctx, r, sc, opts...)
}

// DefaultApp returns the Application backed by volcano.SolveReader.
func DefaultApp() Application { return solverApp{} }

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "volcano",
		Short:         "Maximize pressure released from a valve network",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		asJSON, _ := cmd.Flags().GetBool("log-json")
		c.logger = newLogger(cmd.ErrOrStderr(), verbose, asJSON)
		return nil
	}

	rootCmd.AddCommand(c.newSolveCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func newLogger(w io.Writer, verbose, asJSON bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
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

// SetInput sets the stream read by "solve -".
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
