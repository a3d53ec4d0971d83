package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/fixture-viewer/internal/config"
	"github.com/pfrederiksen/fixture-viewer/internal/loader"
	"github.com/pfrederiksen/fixture-viewer/internal/logger"
	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNoMatches = 2
)

// ErrNoMatches is returned by show when the filters select no match
var ErrNoMatches = errors.New("no matches for the selected filters")

// reportedError is an error whose message has already been rendered to the user
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

var (
	flagConfig  string
	flagSource  string
	flagVerbose bool

	// cfg is resolved before any subcommand runs
	cfg *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Browse a sports fixture by competition and round",
		Long: `A CLI tool to browse a sports fixture.
Loads a comma-separated fixture (competencia, fecha, local, visitante), filters
it by competition and round and renders the matches as cards.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger.Default().Enabled(logger.LevelDebug) {
				logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Path to the YAML config file")
	cmd.PersistentFlags().StringVar(&flagSource, "source", "", "Fixture file path or http(s) URL (default from config)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newShowCmd(),
		newOptionsCmd(),
		newSummaryCmd(),
		newBrowseCmd(),
		newVersionCmd(),
	)

	return cmd
}

// setup resolves configuration and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(flagConfig, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("source") {
		c.Source = flagSource
	}

	level := c.Level()
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	logger.Debug("Configuration resolved", logger.Fields{
		"source":       c.Source,
		"format":       c.Format,
		"http_timeout": c.HTTPTimeout.String(),
	})

	cfg = c
	return nil
}

// loadDataset loads the configured source
func loadDataset(ctx context.Context) (*match.Dataset, error) {
	l := loader.New().
		WithTimeout(cfg.HTTPTimeout).
		WithUserAgent(cfg.UserAgent)
	return l.Load(ctx, cfg.Source)
}

// Run executes the CLI with the given arguments and streams and returns the
// process exit code
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrNoMatches) {
		return ExitNoMatches
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitError
}

// Execute runs the CLI
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
