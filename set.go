package wildmatch

import (
	"github.com/coregx/wildmatch/prefilter"
)

// Set matches one input against many patterns.
//
// Each case-sensitive pattern with a required literal contributes its
// longest literal to one Aho-Corasick automaton. When no such literal occurs
// in the input, only the remaining patterns are evaluated.
//
// A Set is immutable and safe for concurrent use.
//
// Example:
//
//	set := wildmatch.NewSet(
//	    wildmatch.Compile("*.go"),
//	    wildmatch.Compile("go.*"),
//	)
//	set.Matches("go.mod") // [1]
type Set struct {
	patterns []*Pattern

	// anyOf is nil when no pattern has a usable literal.
	anyOf *prefilter.AnyOf

	// gated[i] reports that patterns[i] cannot match unless anyOf finds one of
	// the literals.
	gated []bool
}

// NewSet creates a set of the given patterns. Index i in results refers to
// patterns[i].
func NewSet(patterns ...*Pattern) *Set {
	s := &Set{
		patterns: patterns,
		gated:    make([]bool, len(patterns)),
	}

	var lits []string
	for i, p := range patterns {
		if lit, ok := requiredLiteral(p); ok {
			lits = append(lits, lit)
			s.gated[i] = true
		}
	}
	if len(lits) == 0 {
		return s
	}

	anyOf, err := prefilter.NewAnyOf(lits)
	if err != nil {
		// Without the automaton every pattern is evaluated.
		clear(s.gated)
		return s
	}
	s.anyOf = anyOf
	return s
}

// requiredLiteral returns the longest literal every match of p contains
// byte for byte.
func requiredLiteral(p *Pattern) (string, bool) {
	if p.IsCaseInsensitive() {
		return "", false
	}
	runs := p.engine.Literals()
	if runs.Replacement {
		return "", false
	}
	lit := runs.Longest()
	return lit.Text, !lit.IsEmpty()
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Pattern returns the pattern at index i.
// Panics if i is out of bounds.
func (s *Set) Pattern(i int) *Pattern {
	return s.patterns[i]
}

// MatchString reports whether any pattern in the set matches str.
func (s *Set) MatchString(str string) bool {
	found := s.literalsFound(str)
	for i, p := range s.patterns {
		if s.gated[i] && !found {
			continue
		}
		if p.MatchString(str) {
			return true
		}
	}
	return false
}

// Matches returns the indices of all patterns matching str, in ascending
// order. Returns nil when nothing matches.
func (s *Set) Matches(str string) []int {
	found := s.literalsFound(str)
	var out []int
	for i, p := range s.patterns {
		if s.gated[i] && !found {
			continue
		}
		if p.MatchString(str) {
			out = append(out, i)
		}
	}
	return out
}

// literalsFound reports whether any gating literal occurs in str.
func (s *Set) literalsFound(str string) bool {
	if s.anyOf == nil {
		return true
	}
	return s.anyOf.IsMatch([]byte(str))
}
