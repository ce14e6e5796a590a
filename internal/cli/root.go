// Package cli provides the command-line interface for minigrep.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/internal/cli/commands"
	"github.com/ccollicutt/minigrep/pkg/config"
)

// Execute runs minigrep against the process arguments and environment and
// returns the exit code.
func Execute() int {
	return Run(os.Args, os.Stdout, os.Stderr, config.OSEnv{})
}

// Run executes minigrep with argv (program name first) and returns the exit code.
// Matching lines go to stdout; diagnostics and logs go to stderr.
func Run(argv []string, stdout, stderr io.Writer, env config.EnvLookup) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: config.LogLevel(env),
	}))

	rootCmd := NewRootCommand(env, logger)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(programArgs(argv))

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, config.ErrMissingArgument) {
			_, _ = fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand(env config.EnvLookup, logger *slog.Logger) *cobra.Command {
	rootCmd := commands.NewSearchCommand(&commands.SearchOptions{
		Env:    env,
		Logger: logger,
	})
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// programArgs drops the program name. The result is never nil so cobra
// does not fall back to os.Args.
func programArgs(argv []string) []string {
	if len(argv) <= 1 {
		return []string{}
	}
	return argv[1:]
}
