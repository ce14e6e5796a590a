// Package runner reads a file and prints the lines that match a query.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/search"
	"github.com/ccollicutt/minigrep/pkg/source"
)

// IOError reports that the target file could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Runner performs one search.
type Runner struct {
	out       io.Writer
	logger    *slog.Logger
	formatter output.Formatter
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where matching lines are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithFormatter sets how matching lines are rendered.
func WithFormatter(f output.Formatter) Option {
	return func(r *Runner) {
		r.formatter = f
	}
}

// New creates a Runner writing text to stdout.
func New(opts ...Option) *Runner {
	r := &Runner{
		out:       os.Stdout,
		logger:    slog.New(slog.DiscardHandler),
		formatter: output.NewTextFormatter(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run reads cfg.FilePath and writes every line containing cfg.Query.
// A read failure is returned as *IOError and nothing is written.
func (r *Runner) Run(ctx context.Context, cfg config.Config) error {
	content, err := source.Load(ctx, cfg.FilePath)
	if err != nil {
		return &IOError{Path: cfg.FilePath, Err: err}
	}

	r.logger.Debug("loaded file", "path", content.Path, "bytes", content.Size())

	matches := search.Search(cfg.Query, content.Text, cfg.IgnoreCase)

	r.logger.Debug("search complete",
		"query", cfg.Query,
		"ignore_case", cfg.IgnoreCase,
		"matches", len(matches))

	if err := r.formatter.Format(ctx, matches, r.out); err != nil {
		return fmt.Errorf("writing %s output: %w", r.formatter.Name(), err)
	}

	return nil
}
