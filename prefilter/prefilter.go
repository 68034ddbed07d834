// Package prefilter provides cheap necessary-condition checks for wildcard
// patterns, built from the literal runs a pattern requires.
//
// A prefilter rejects inputs that cannot possibly match before the
// backtracking matcher runs. For a pattern like "log-*.txt" any match must
// start with "log-", end with ".txt" and be at least 8 bytes long; most
// non-matching inputs fail one of these checks without a single rune being
// decoded.
//
// The checks, in order:
//   - Minimum byte length
//   - Prefix and suffix anchoring
//   - Exact rune count for patterns without multi-wildcards
//   - In-order search of the inner literal runs (memchr / memmem)
//
// Example usage:
//
//	prog, _ := pattern.Compile("log-*error*.txt", pattern.DefaultSymbols(), false, nil)
//	pf := prefilter.NewBuilder(literal.Extract(prog.States())).Build()
//	if pf != nil && !pf.MayMatch(input) {
//	    return false // no match possible
//	}
//	return prog.IsMatch(input)
package prefilter

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/wildmatch/literal"
	"github.com/coregx/wildmatch/simd"
)

// Finder locates one literal in a haystack.
//
// Key methods:
//   - Find: returns the next occurrence at or after start
//   - LiteralLen: length of the literal in bytes
//   - HeapBytes: returns memory usage for profiling
type Finder interface {
	// Find returns the index of the first occurrence of the literal starting
	// at or after start, or -1 if there is none.
	//
	// Parameters:
	//   haystack - the text to search
	//   start - the starting position (must be >= 0)
	Find(haystack string, start int) int

	// LiteralLen returns the length of the searched literal in bytes.
	LiteralLen() int

	// HeapBytes returns the number of bytes of heap memory used by this finder.
	HeapBytes() int
}

// NewFinder returns the fastest Finder for lit: memchr for a single byte,
// memmem otherwise. Returns nil for an empty literal.
func NewFinder(lit literal.Literal) Finder {
	switch lit.Len() {
	case 0:
		return nil
	case 1:
		return &memchrFinder{needle: lit.Text[0]}
	default:
		return &memmemFinder{searcher: simd.NewSearcher(lit.Text)}
	}
}

// Prefilter is a set of necessary conditions for a pattern match.
//
// A Prefilter never rejects an input the pattern matches. When IsComplete
// reports true its answer is also sufficient.
//
// A Prefilter is immutable and safe for concurrent use.
type Prefilter struct {
	prefix string
	suffix string
	inner  []Finder
	minLen int

	// runes is the exact character count of a match; only checked when exact.
	runes int
	exact bool

	complete bool
}

// Builder constructs a Prefilter from the literal runs of a pattern.
//
// Example:
//
//	runs := literal.Extract(prog.States())
//	pf := prefilter.NewBuilder(runs).Build()
//	if pf == nil {
//	    // Nothing to check, run the matcher directly
//	}
type Builder struct {
	runs literal.Runs
}

// NewBuilder creates a new prefilter builder from extracted literal runs.
//
// The runs must come from a case-sensitive program: byte comparisons do not
// hold under case folding.
func NewBuilder(runs literal.Runs) *Builder {
	return &Builder{runs: runs}
}

// Build constructs the prefilter for the given runs.
//
// Returns nil when no check would reject anything (the pattern is a lone
// multi-wildcard) or when the pattern contains a literal U+FFFD, which also
// stands for single invalid input bytes.
func (b *Builder) Build() *Prefilter {
	r := b.runs
	if r.Replacement {
		return nil
	}
	if !r.Complete && !r.Exact && r.MinLen == 0 {
		return nil
	}

	pf := &Prefilter{
		prefix:   r.Prefix.Text,
		suffix:   r.Suffix.Text,
		minLen:   r.MinLen,
		runes:    r.Runes,
		exact:    r.Exact,
		complete: r.Complete,
	}
	for i := 0; i < r.Inner.Len(); i++ {
		pf.inner = append(pf.inner, NewFinder(r.Inner.Get(i)))
	}
	return pf
}

// MayMatch reports whether input passes every check. False means the
// pattern cannot match input.
func (p *Prefilter) MayMatch(input string) bool {
	if p.complete {
		return input == p.prefix
	}
	if len(input) < p.minLen {
		return false
	}
	if !strings.HasPrefix(input, p.prefix) || !strings.HasSuffix(input, p.suffix) {
		return false
	}
	if p.exact && utf8.RuneCountInString(input) != p.runes {
		return false
	}
	if len(p.inner) == 0 {
		return true
	}

	// minLen covers prefix and suffix, so the window is never inverted.
	window := input[:len(input)-len(p.suffix)]
	pos := len(p.prefix)
	for _, f := range p.inner {
		idx := f.Find(window, pos)
		if idx == -1 {
			return false
		}
		pos = idx + f.LiteralLen()
	}
	return true
}

// IsComplete reports whether MayMatch is the final answer: the pattern has
// no wildcard and matches only its own text.
func (p *Prefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes returns the heap memory held by the inner finders.
func (p *Prefilter) HeapBytes() int {
	n := 0
	for _, f := range p.inner {
		n += f.HeapBytes()
	}
	return n
}

// memchrFinder wraps simd.Memchr as a Finder.
//
// Used for inner runs of a single byte, as in "*-*".
type memchrFinder struct {
	needle byte
}

// Find implements Finder.Find using simd.Memchr.
func (f *memchrFinder) Find(haystack string, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memchr(haystack[start:], f.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// LiteralLen implements Finder.LiteralLen.
func (f *memchrFinder) LiteralLen() int {
	return 1
}

// HeapBytes implements Finder.HeapBytes.
// Returns 0 as no heap allocation is needed.
func (f *memchrFinder) HeapBytes() int {
	return 0
}

// memmemFinder wraps a simd.Searcher as a Finder.
//
// The searcher picks the rarest byte of the literal once, so repeated
// searches skip the selection.
type memmemFinder struct {
	searcher *simd.Searcher
}

// Find implements Finder.Find using the rare-byte searcher.
func (f *memmemFinder) Find(haystack string, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := f.searcher.Index(haystack[start:])
	if idx == -1 {
		return -1
	}
	return start + idx
}

// LiteralLen implements Finder.LiteralLen.
func (f *memmemFinder) LiteralLen() int {
	return len(f.searcher.Needle())
}

// HeapBytes implements Finder.HeapBytes.
func (f *memmemFinder) HeapBytes() int {
	return len(f.searcher.Needle())
}
