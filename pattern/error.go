// Package pattern implements the wildcard pattern compiler and the matcher.
//
// A pattern is compiled once into a Program: a normalized sequence of match
// states, one per literal or single-wildcard token plus a synthetic end
// state. Runs of multi-wildcards collapse into a flag on the following
// state. Matching a Program against an input is a single forward scan with
// bounded backtracking to the most recent multi-wildcard anchor.
package pattern

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrCapacity indicates a fixed-capacity Storage ran out of room
	ErrCapacity = errors.New("pattern exceeds state capacity")

	// ErrSameSymbols indicates the multi- and single-wildcard symbols are equal
	ErrSameSymbols = errors.New("multi and single wildcard symbols must differ")

	// ErrInvalidSymbol indicates a wildcard symbol is not a valid Unicode code point
	ErrInvalidSymbol = errors.New("wildcard symbol is not a valid rune")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("wildcard compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("wildcard compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
