package config

import (
	"errors"
	"iter"
)

// ErrMissingArgument is returned by Build when the query or file path is absent.
var ErrMissingArgument = errors.New("not enough arguments")

// Build resolves a Config from process arguments and the environment.
//
// The first element of args is the program name and is always discarded.
// The next two are the query and the file path. Anything after them is
// never read. IgnoreCase is set when IGNORE_CASE is present in env, whatever
// its value.
func Build(args iter.Seq[string], env EnvLookup) (Config, error) {
	next, stop := iter.Pull(args)
	defer stop()

	next()

	query, ok := next()
	if !ok {
		return Config{}, ErrMissingArgument
	}

	filePath, ok := next()
	if !ok {
		return Config{}, ErrMissingArgument
	}

	_, ignoreCase := env.LookupEnv(EnvIgnoreCase)

	return Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}
