// Package meta ties the wildcard compiler, the literal extractor and the
// prefilter together behind one Engine.
//
// The Engine coordinates two stages:
//   - Prefilter: cheap literal checks that reject most non-matching inputs
//   - Matcher: the anchor-based backtracking matcher of package pattern
//
// The prefilter is built only when it is sound: case-sensitive patterns
// without a literal U+FFFD. Patterns without wildcards are answered by the
// prefilter alone.
package meta

import (
	"unicode/utf8"

	"github.com/coregx/wildmatch/pattern"
)

// Config controls how patterns are compiled and matched.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MultiWildcard = '%'
//	config.SingleWildcard = '_'
//	engine, err := meta.CompileWithConfig("100%_done", config)
type Config struct {
	// MultiWildcard matches any sequence of characters, including none.
	// Default: '*'
	MultiWildcard rune

	// SingleWildcard matches exactly one character.
	// Default: '?'
	SingleWildcard rune

	// CaseInsensitive compares literals with simple Unicode case folding.
	// Default: false
	CaseInsensitive bool

	// EnablePrefilter enables literal-based prefiltering.
	// When false, every input goes through the matcher.
	// Default: true
	EnablePrefilter bool

	// MaxStates caps the number of compiled states (one per literal or
	// single-wildcard character, plus the end state). Patterns that need
	// more fail to compile with pattern.ErrCapacity.
	// Default: 0 (unbounded)
	MaxStates int

	// CollectStats counts searches, prefilter outcomes and matcher runs on
	// the Engine. The counters are shared by every caller of the Engine, so
	// with the default the match path writes nothing.
	// Default: false
	CollectStats bool
}

// DefaultConfig returns the '*' and '?' wildcards, case-sensitive matching,
// prefiltering enabled, unbounded state storage and no statistics.
func DefaultConfig() Config {
	return Config{
		MultiWildcard:   pattern.DefaultMulti,
		SingleWildcard:  pattern.DefaultSingle,
		EnablePrefilter: true,
	}
}

// Validate checks if the configuration is valid.
//
// Rules:
//   - Both wildcards must be valid Unicode code points
//   - The wildcards must differ
//   - MaxStates must not be negative
//
// Example:
//
//	config := meta.Config{MultiWildcard: '*', SingleWildcard: '*'} // Invalid!
//	if err := config.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func (c Config) Validate() error {
	if !utf8.ValidRune(c.MultiWildcard) {
		return &ConfigError{
			Field:   "MultiWildcard",
			Message: "must be a valid Unicode code point",
		}
	}
	if !utf8.ValidRune(c.SingleWildcard) {
		return &ConfigError{
			Field:   "SingleWildcard",
			Message: "must be a valid Unicode code point",
		}
	}
	if c.MultiWildcard == c.SingleWildcard {
		return &ConfigError{
			Field:   "SingleWildcard",
			Message: "must differ from MultiWildcard",
		}
	}
	if c.MaxStates < 0 {
		return &ConfigError{
			Field:   "MaxStates",
			Message: "must not be negative",
		}
	}
	return nil
}

// Symbols returns the configured wildcard pair.
func (c Config) Symbols() pattern.Symbols {
	return pattern.Symbols{Multi: c.MultiWildcard, Single: c.SingleWildcard}
}

// storage returns the state storage strategy selected by MaxStates.
func (c Config) storage() pattern.Storage {
	if c.MaxStates > 0 {
		return pattern.NewFixed(c.MaxStates)
	}
	return pattern.NewGrowable()
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "wildmatch: invalid config: " + e.Field + ": " + e.Message
}
