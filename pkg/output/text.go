package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// TextFormatter writes one line per match, each terminated by "\n".
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes lines in order. Output is buffered and flushed once.
func (f *TextFormatter) Format(ctx context.Context, lines []string, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
