package commands

import (
	"context"
	"iter"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/runner"
)

// SearchOptions holds the dependencies of the search command.
type SearchOptions struct {
	Env    config.EnvLookup
	Logger *slog.Logger
}

// NewSearchCommand creates the search command.
//
// Flag parsing is disabled: every argument is positional, so a query that
// looks like a flag is searched for literally.
func NewSearchCommand(opts *SearchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <file-path>",
		Short: "Print lines of a file that contain a query",
		Long: `Print every line of a file that contains the query string.

Matching is case-sensitive unless the IGNORE_CASE environment variable is set
(to any value, including empty).

Exit codes:
  0 - Search completed (including when nothing matched)
  1 - Missing arguments or the file could not be read`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Build(withProgramName(cmd.Name(), args), opts.Env)
	if err != nil {
		return err
	}

	runnerOpts := []runner.Option{runner.WithOutput(cmd.OutOrStdout())}
	if opts.Logger != nil {
		runnerOpts = append(runnerOpts, runner.WithLogger(opts.Logger))
	}

	return runner.New(runnerOpts...).Run(ctx, cfg)
}

// withProgramName yields name followed by args, the shape config.Build expects.
func withProgramName(name string, args []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for _, arg := range args {
			if !yield(arg) {
				return
			}
		}
	}
}
