// Package source loads search targets into memory.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Content is the full text of a file.
type Content struct {
	// Path is the file the text was read from.
	Path string

	// Text is the file's contents.
	Text string
}

// Load reads the whole file at path.
// The file must be valid UTF-8.
func Load(ctx context.Context, path string) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	return &Content{Path: path, Text: string(data)}, nil
}

// Size returns the length of the text in bytes.
func (c *Content) Size() int {
	return len(c.Text)
}
