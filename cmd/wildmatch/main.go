// Command wildmatch prints the lines of its input that a wildcard pattern
// matches in full.
//
// Usage:
//
//	wildmatch [OPTIONS] PATTERN [FILE...]
//	wildmatch [OPTIONS] -f patterns.yaml [FILE...]
//
// With no FILE, or when FILE is -, standard input is read. Lines end at '\n';
// a '\r' before it is part of the line. The exit status
// is 0 if a line is selected, 1 if no line is selected and 2 if an error
// occurred.
package main

import (
	"os"

	"github.com/coregx/wildmatch/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, logger.New(os.Stderr)))
}
