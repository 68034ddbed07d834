package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/wildmatch/simd"
)

// Default wildcard symbols
const (
	DefaultMulti  = '*'
	DefaultSingle = '?'
)

// Symbols selects the runes used as wildcard tokens.
type Symbols struct {
	// Multi matches any sequence of characters, including the empty one.
	Multi rune

	// Single matches exactly one character.
	Single rune
}

// DefaultSymbols returns the '*' and '?' pair.
func DefaultSymbols() Symbols {
	return Symbols{Multi: DefaultMulti, Single: DefaultSingle}
}

// Validate checks that both symbols are valid runes and differ.
func (s Symbols) Validate() error {
	if !utf8.ValidRune(s.Multi) || !utf8.ValidRune(s.Single) {
		return ErrInvalidSymbol
	}
	if s.Multi == s.Single {
		return ErrSameSymbols
	}
	return nil
}

// Kind distinguishes the three kinds of match state.
type Kind uint8

const (
	// KindLiteral matches one specific character.
	KindLiteral Kind = iota

	// KindSingle matches any one character.
	KindSingle

	// KindEnd marks the end of the pattern.
	KindEnd
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindSingle:
		return "Single"
	case KindEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// State is one step of a compiled pattern.
type State struct {
	Kind Kind

	// Literal is the character to match; only meaningful for KindLiteral.
	Literal rune

	// AfterMulti reports that a multi-wildcard directly precedes this state.
	AfterMulti bool
}

// Program is a compiled wildcard pattern.
//
// A Program is immutable and safe for concurrent use by multiple goroutines.
// Matching allocates only per-call scratch space.
type Program struct {
	states          []State
	maxSingleRun    int
	caseInsensitive bool
	syms            Symbols

	// skips is indexed by state; a zero entry means the state is matched
	// rune by rune. Nil when no state can skip.
	skips []skip
}

// Compile parses src into a Program.
//
// Every string is a valid pattern. Consecutive multi-wildcards collapse into
// one, so "a***c" and "a*c" compile to the same states. The only failure is
// a Storage that runs out of capacity. A nil store selects Growable.
// Symbols are assumed to be validated by the caller.
func Compile(src string, syms Symbols, caseInsensitive bool, store Storage) (*Program, error) {
	if store == nil {
		store = NewGrowable()
	}

	afterMulti := false
	singleRun, maxSingleRun := 0, 0

	for _, r := range src {
		switch r {
		case syms.Multi:
			afterMulti = true
			maxSingleRun = max(maxSingleRun, singleRun)
			singleRun = 0
			continue
		case syms.Single:
			singleRun++
			if err := store.Push(State{Kind: KindSingle, AfterMulti: afterMulti}); err != nil {
				return nil, &CompileError{Pattern: src, Err: err}
			}
		default:
			if err := store.Push(State{Kind: KindLiteral, Literal: r, AfterMulti: afterMulti}); err != nil {
				return nil, &CompileError{Pattern: src, Err: err}
			}
		}
		afterMulti = false
	}
	maxSingleRun = max(maxSingleRun, singleRun)

	if src != "" {
		if err := store.Push(State{Kind: KindEnd, AfterMulti: afterMulti}); err != nil {
			return nil, &CompileError{Pattern: src, Err: err}
		}
	}

	p := &Program{
		states:          store.States(),
		maxSingleRun:    maxSingleRun,
		caseInsensitive: caseInsensitive,
		syms:            syms,
	}
	p.skips = buildSkips(p.states, caseInsensitive)
	return p, nil
}

// skip describes how to jump over input absorbed by a multi-wildcard until
// the next candidate for a literal state.
type skip struct {
	// needle is the UTF-8 encoding of the literal.
	needle string

	// alt is the other ASCII case of needle in case-insensitive programs,
	// 0 when the literal has no other case.
	alt byte
}

// next returns the offset of the first candidate in input, or -1.
func (s *skip) next(input string) int {
	if s.alt != 0 {
		return simd.Memchr2(input, s.needle[0], s.alt)
	}
	return simd.Memmem(input, s.needle)
}

// buildSkips precomputes skips for literal states that follow a
// multi-wildcard. U+FFFD also stands for invalid input bytes and is never
// skipped; in case-insensitive programs only ASCII literals whose whole fold
// orbit is ASCII qualify ('k' and 's' fold with non-ASCII runes).
func buildSkips(states []State, caseInsensitive bool) []skip {
	var skips []skip
	for i, s := range states {
		if s.Kind != KindLiteral || !s.AfterMulti || s.Literal == utf8.RuneError {
			continue
		}

		sk := skip{needle: string(s.Literal)}
		if caseInsensitive {
			var ok bool
			if sk.alt, ok = asciiFoldPartner(s.Literal); !ok {
				continue
			}
		}

		if skips == nil {
			skips = make([]skip, len(states))
		}
		skips[i] = sk
	}
	return skips
}

// asciiFoldPartner returns the other member of r's case orbit (0 if none).
// ok is false unless r and its whole orbit are ASCII.
func asciiFoldPartner(r rune) (partner byte, ok bool) {
	if r >= utf8.RuneSelf {
		return 0, false
	}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f >= utf8.RuneSelf {
			return 0, false
		}
		partner = byte(f)
	}
	return partner, true
}

// States returns the compiled states. The returned slice must not be modified.
func (p *Program) States() []State {
	return p.states
}

// Len returns the number of states, including the end state.
func (p *Program) Len() int {
	return len(p.states)
}

// MaxSingleRun returns the longest run of single wildcards between two
// multi-wildcards. It sizes the replay buffer of the matcher.
func (p *Program) MaxSingleRun() int {
	return p.maxSingleRun
}

// CaseInsensitive reports whether literals are compared with case folding.
func (p *Program) CaseInsensitive() bool {
	return p.caseInsensitive
}

// Symbols returns the wildcard symbols the program was compiled with.
func (p *Program) Symbols() Symbols {
	return p.syms
}

// Equal reports whether p and q have the same states and case mode.
// Wildcard symbols are not compared.
func (p *Program) Equal(q *Program) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	if p.caseInsensitive != q.caseInsensitive || len(p.states) != len(q.states) {
		return false
	}
	for i := range p.states {
		if p.states[i] != q.states[i] {
			return false
		}
	}
	return true
}

// String returns the normalized pattern: the source with runs of
// multi-wildcards collapsed, written with the program's symbols.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.states {
		if s.AfterMulti {
			b.WriteRune(p.syms.Multi)
		}
		switch s.Kind {
		case KindLiteral:
			b.WriteRune(s.Literal)
		case KindSingle:
			b.WriteRune(p.syms.Single)
		}
	}
	return b.String()
}
