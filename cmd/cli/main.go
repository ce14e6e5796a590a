// minigrep prints the lines of a file that contain a query string.
//
// Usage:
//
//	minigrep <query> <file-path>
//
// Set IGNORE_CASE to match without regard to case.
package main

import (
	"os"

	"github.com/ccollicutt/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
