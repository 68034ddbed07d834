package prefilter

import (
	"errors"

	"github.com/coregx/ahocorasick"
)

// ErrNoLiterals is returned by NewAnyOf when given no non-empty literal.
var ErrNoLiterals = errors.New("prefilter: no literals")

// AnyOf reports whether any of many literals occurs in a haystack.
//
// It wraps an Aho-Corasick automaton, so one pass over the haystack checks
// every literal at once. Pattern sets use it to skip patterns whose required
// literal is absent.
type AnyOf struct {
	auto *ahocorasick.Automaton
	lits []string
}

// NewAnyOf builds an automaton over lits. Empty literals are ignored; they
// occur in every haystack and carry no information.
func NewAnyOf(lits []string) (*AnyOf, error) {
	a := &AnyOf{}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		if lit == "" {
			continue
		}
		builder.AddPattern([]byte(lit))
		a.lits = append(a.lits, lit)
	}
	if len(a.lits) == 0 {
		return nil, ErrNoLiterals
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	a.auto = auto
	return a, nil
}

// IsMatch reports whether any literal occurs in haystack.
func (a *AnyOf) IsMatch(haystack []byte) bool {
	return a.auto.IsMatch(haystack)
}

// Find returns the bounds of the leftmost literal occurrence at or after at,
// or (-1, -1).
func (a *AnyOf) Find(haystack []byte, at int) (start, end int) {
	m := a.auto.Find(haystack, at)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// Len returns the number of literals in the automaton.
func (a *AnyOf) Len() int {
	return len(a.lits)
}
