// Package config resolves runtime parameters for minigrep from process
// arguments and the environment.
package config

// Config holds the parameters for a single search.
// It is built once by Build and not modified afterwards.
type Config struct {
	// Query is the substring to look for. An empty query matches every line.
	Query string

	// FilePath is the file to search.
	FilePath string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// EnvLookup reads environment variables.
type EnvLookup interface {
	// LookupEnv returns the value of the named variable and whether it is set.
	LookupEnv(name string) (string, bool)
}
