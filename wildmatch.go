// Package wildmatch matches strings against simple wildcard patterns.
//
// A pattern is ordinary text with two wildcard characters:
//   - '*' matches any sequence of characters, including the empty one
//   - '?' matches exactly one character
//
// Every other character matches itself, and a pattern must match the whole
// input, never a substring. There is no escape syntax or character class.
// Both wildcards can be replaced with other characters through Config.
//
// Basic usage:
//
//	p := wildmatch.Compile("*.go")
//	if p.MatchString("main.go") {
//	    fmt.Println("matched!")
//	}
//
// Advanced usage:
//
//	// SQL LIKE style wildcards, case-insensitive
//	config := wildmatch.DefaultConfig()
//	config.MultiWildcard = '%'
//	config.SingleWildcard = '_'
//	config.CaseInsensitive = true
//	p, err := wildmatch.CompileWithConfig("user_%", config)
//
// Performance characteristics:
//   - Compiling is linear in the pattern length and never fails by default
//   - Matching is a single forward scan with bounded backtracking to the last
//     multi-wildcard; it never recurses
//   - Literal prefixes, suffixes and inner runs reject most non-matching
//     inputs before the matcher runs
//   - Many patterns can be matched at once with a Set
package wildmatch

import (
	"errors"
	"unsafe"

	"github.com/coregx/wildmatch/meta"
)

// ErrCustomSymbols is returned by MarshalText for patterns compiled with
// wildcards other than '*' and '?'. UnmarshalText reads the default
// wildcards, so their text would decode to a different pattern.
var ErrCustomSymbols = errors.New("wildmatch: cannot marshal pattern with custom wildcards")

// Config controls how patterns are compiled. See meta.Config for the fields.
type Config = meta.Config

// Pattern represents a compiled wildcard pattern.
//
// A Pattern is safe to use concurrently from multiple goroutines.
// The zero Pattern is not usable; create patterns with one of the Compile
// functions or UnmarshalText.
//
// Example:
//
//	p := wildmatch.Compile("c?t")
//	p.MatchString("cat") // true
//	p.MatchString("cart") // false
type Pattern struct {
	engine *meta.Engine
}

// Compile compiles a case-sensitive pattern with the '*' and '?' wildcards.
//
// Every string is a valid pattern, so Compile never fails. Consecutive
// multi-wildcards are collapsed: "a***c" and "a*c" are the same pattern.
//
// Example:
//
//	p := wildmatch.Compile("*cat*")
//	p.MatchString("dog_cat_dog") // true
func Compile(pattern string) *Pattern {
	return MustCompileWithConfig(pattern, DefaultConfig())
}

// CompileCaseInsensitive is like Compile but compares characters with
// simple Unicode case folding: "CAT" matches "cat", and "K" matches the
// Kelvin sign.
func CompileCaseInsensitive(pattern string) *Pattern {
	config := DefaultConfig()
	config.CaseInsensitive = true
	return MustCompileWithConfig(pattern, config)
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Returns a *meta.ConfigError when the configuration is invalid, for example
// when both wildcards are the same character, or a *pattern.CompileError
// wrapping pattern.ErrCapacity when the pattern exceeds config.MaxStates.
//
// Example:
//
//	config := wildmatch.DefaultConfig()
//	config.MultiWildcard = '%'
//	config.SingleWildcard = '_'
//	p, err := wildmatch.CompileWithConfig("100%", config)
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Pattern{engine: engine}, nil
}

// MustCompileWithConfig is like CompileWithConfig but panics on error.
// It simplifies safe initialization of global variables holding patterns.
func MustCompileWithConfig(pattern string, config Config) *Pattern {
	p, err := CompileWithConfig(pattern, config)
	if err != nil {
		panic("wildmatch: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// DefaultConfig returns the default configuration: '*' and '?' wildcards,
// case-sensitive matching, prefiltering enabled.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// MatchString reports whether the whole string s matches the pattern.
//
// Example:
//
//	p := wildmatch.Compile("cat*dog")
//	p.MatchString("cat and dog") // true
//	p.MatchString("cat") // false
func (p *Pattern) MatchString(s string) bool {
	return p.engine.IsMatch(s)
}

// Match reports whether the whole byte slice b matches the pattern.
// Invalid UTF-8 bytes count as one U+FFFD character each.
// b is not copied and must not be modified during the call.
func (p *Pattern) Match(b []byte) bool {
	// The engine never retains its input.
	return p.engine.IsMatch(unsafe.String(unsafe.SliceData(b), len(b)))
}

// String returns the normalized pattern: the source text with runs of
// multi-wildcards collapsed, written with the configured wildcards.
//
// Example:
//
//	wildmatch.Compile("a***b").String() // "a*b"
func (p *Pattern) String() string {
	return p.engine.String()
}

// IsCaseInsensitive reports whether the pattern compares with case folding.
func (p *Pattern) IsCaseInsensitive() bool {
	return p.engine.Config().CaseInsensitive
}

// Config returns the configuration the pattern was compiled with.
func (p *Pattern) Config() Config {
	return p.engine.Config()
}

// Equal reports whether p and other compile to the same match states with
// the same case mode. The wildcard characters are not compared: "a%c" with
// '%' as multi-wildcard equals "a*c" with the defaults.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.engine.Equal(other.engine)
}

// Stats returns execution statistics for performance analysis. They are
// only collected for patterns compiled with Config.CollectStats; otherwise
// Stats is always zero.
func (p *Pattern) Stats() meta.Stats {
	return p.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (p *Pattern) ResetStats() {
	p.engine.ResetStats()
}

// MarshalText implements encoding.TextMarshaler. The output is the
// normalized pattern.
//
// The case mode is not part of the text, so a case-insensitive pattern
// decodes as case-sensitive. Patterns with custom wildcards fail with
// ErrCustomSymbols: "%" with '%' as multi-wildcard would decode as a
// literal '%', and a literal '*' as a wildcard.
func (p *Pattern) MarshalText() ([]byte, error) {
	if p.engine.Config().Symbols() != meta.DefaultConfig().Symbols() {
		return nil, ErrCustomSymbols
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by compiling text with
// the default configuration.
func (p *Pattern) UnmarshalText(text []byte) error {
	*p = *Compile(string(text))
	return nil
}
