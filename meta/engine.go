package meta

import (
	"sync/atomic"

	"github.com/coregx/wildmatch/literal"
	"github.com/coregx/wildmatch/pattern"
	"github.com/coregx/wildmatch/prefilter"
)

// Engine is a compiled pattern together with its prefilter.
//
// The Engine:
//  1. Compiles the pattern into match states
//  2. Extracts the literal runs every match must contain
//  3. Builds a prefilter from them (when sound)
//  4. Runs the prefilter before the matcher on every input
//
// Thread safety: the program and prefilter are immutable after compilation,
// so multiple goroutines can call IsMatch on the same Engine concurrently.
// IsMatch keeps its scratch state local to the call. Statistics are only
// kept when Config.CollectStats is set, and are then updated atomically.
//
// Example:
//
//	engine, err := meta.Compile("*.go")
//	if err != nil {
//	    return err
//	}
//	println(engine.IsMatch("main.go")) // true
type Engine struct {
	// stats is nil unless Config.CollectStats is set. Allocated separately
	// so the counters are 8-byte aligned on 32-bit platforms.
	stats *Stats

	prog   *pattern.Program
	runs   literal.Runs
	pf     *prefilter.Prefilter
	config Config
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts IsMatch calls
	Searches uint64

	// PrefilterRejects counts inputs rejected without running the matcher
	PrefilterRejects uint64

	// PrefilterComplete counts inputs answered by a complete prefilter
	PrefilterComplete uint64

	// MatcherRuns counts inputs handed to the backtracking matcher
	MatcherRuns uint64
}

// Compile compiles src with the default configuration.
func Compile(src string) (*Engine, error) {
	return CompileWithConfig(src, DefaultConfig())
}

// CompileWithConfig validates config and compiles src with it.
//
// Errors are *ConfigError for an invalid config, or *pattern.CompileError
// when the pattern exceeds config.MaxStates.
func CompileWithConfig(src string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	prog, err := pattern.Compile(src, config.Symbols(), config.CaseInsensitive, config.storage())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		prog:   prog,
		runs:   literal.Extract(prog.States()),
		config: config,
	}
	if config.CollectStats {
		e.stats = &Stats{}
	}
	if config.EnablePrefilter && !config.CaseInsensitive {
		e.pf = prefilter.NewBuilder(e.runs).Build()
	}
	return e, nil
}

// IsMatch reports whether the whole input matches the pattern.
func (e *Engine) IsMatch(input string) bool {
	if e.stats != nil {
		return e.isMatchCounted(input)
	}
	if e.pf != nil {
		if !e.pf.MayMatch(input) {
			return false
		}
		if e.pf.IsComplete() {
			return true
		}
	}
	return e.prog.IsMatch(input)
}

// isMatchCounted is IsMatch with statistics.
func (e *Engine) isMatchCounted(input string) bool {
	atomic.AddUint64(&e.stats.Searches, 1)

	if e.pf != nil {
		if !e.pf.MayMatch(input) {
			atomic.AddUint64(&e.stats.PrefilterRejects, 1)
			return false
		}
		if e.pf.IsComplete() {
			atomic.AddUint64(&e.stats.PrefilterComplete, 1)
			return true
		}
	}

	atomic.AddUint64(&e.stats.MatcherRuns, 1)
	return e.prog.IsMatch(input)
}

// Program returns the compiled program.
func (e *Engine) Program() *pattern.Program {
	return e.prog
}

// Literals returns the literal runs extracted from the program.
func (e *Engine) Literals() literal.Runs {
	return e.runs
}

// Prefilter returns the prefilter, or nil when none is used.
func (e *Engine) Prefilter() *prefilter.Prefilter {
	return e.pf
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// String returns the normalized pattern.
func (e *Engine) String() string {
	return e.prog.String()
}

// Equal reports whether e and other match the same inputs by construction:
// same states and same case mode.
func (e *Engine) Equal(other *Engine) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.prog.Equal(other.prog)
}

// Stats returns a snapshot of the execution statistics. It is zero unless
// the engine was compiled with Config.CollectStats.
func (e *Engine) Stats() Stats {
	if e.stats == nil {
		return Stats{}
	}
	return Stats{
		Searches:          atomic.LoadUint64(&e.stats.Searches),
		PrefilterRejects:  atomic.LoadUint64(&e.stats.PrefilterRejects),
		PrefilterComplete: atomic.LoadUint64(&e.stats.PrefilterComplete),
		MatcherRuns:       atomic.LoadUint64(&e.stats.MatcherRuns),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	if e.stats == nil {
		return
	}
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.PrefilterComplete, 0)
	atomic.StoreUint64(&e.stats.MatcherRuns, 0)
}
