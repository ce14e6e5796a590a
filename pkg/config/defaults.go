package config

import (
	"log/slog"
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvLogLevel   = "MINIGREP_LOG_LEVEL"
)

// DefaultLogLevel keeps normal runs quiet on stderr.
const DefaultLogLevel = slog.LevelWarn

// OSEnv reads the process environment.
type OSEnv struct{}

// LookupEnv implements EnvLookup.
func (OSEnv) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// LogLevel returns the diagnostic log level named by MINIGREP_LOG_LEVEL.
// Unknown or missing values yield DefaultLogLevel.
func LogLevel(env EnvLookup) slog.Level {
	value, ok := env.LookupEnv(EnvLogLevel)
	if !ok {
		return DefaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLogLevel
	}
}
