// Package search provides line-oriented substring matching over in-memory text.
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines yields each line of contents without its line terminator.
// Lines end at "\n" or "\r\n". A final line without a terminator is still
// yielded, and a trailing terminator does not produce an empty last line.
// The yielded strings share memory with contents.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}

// CaseSensitive returns the lines of contents that contain query exactly.
func CaseSensitive(query, contents string) []string {
	var results []string
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// CaseInsensitive returns the lines of contents that contain query after
// both are lowercased. The returned lines keep their original case.
func CaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results []string
	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Search dispatches to CaseInsensitive or CaseSensitive.
func Search(query, contents string, ignoreCase bool) []string {
	if ignoreCase {
		return CaseInsensitive(query, contents)
	}
	return CaseSensitive(query, contents)
}
