// Package output renders search results.
package output

import (
	"context"
	"io"
)

// Formatter renders matching lines.
type Formatter interface {
	// Format writes lines to w.
	Format(ctx context.Context, lines []string, w io.Writer) error

	// Name returns the format name.
	Name() string
}
