package literal

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/wildmatch/pattern"
)

// Runs holds the literal requirements of one compiled pattern.
//
// For a pattern like "ab?c*de*f" the runs are:
//   - Prefix: "ab" (must start the input)
//   - Inner:  ["c", "de"] (must appear in order, in between)
//   - Suffix: "f"  (must end the input)
type Runs struct {
	// Prefix is the literal text before the first wildcard token.
	Prefix Literal

	// Suffix is the literal text after the last wildcard token. Empty when
	// the pattern ends with a multi-wildcard.
	Suffix Literal

	// Inner holds the remaining literal runs in pattern order.
	Inner *Seq

	// Complete reports that the pattern has no wildcard token at all:
	// an input matches iff it equals Prefix.
	Complete bool

	// Exact reports that the pattern has no multi-wildcard, so a matching
	// input has exactly Runes characters.
	Exact bool

	// Runes is the number of characters a match consumes outside
	// multi-wildcards.
	Runes int

	// MinLen is the minimum input length in bytes.
	MinLen int

	// Replacement reports a literal U+FFFD. Invalid input bytes decode to
	// U+FFFD one byte at a time, so byte-level checks do not apply.
	Replacement bool
}

// Longest returns the longest required literal: prefix, suffix or inner run.
// Ties keep the earliest run.
func (r *Runs) Longest() Literal {
	best := r.Prefix
	for i := 0; i < r.Inner.Len(); i++ {
		if lit := r.Inner.Get(i); lit.Len() > best.Len() {
			best = lit
		}
	}
	if r.Suffix.Len() > best.Len() {
		best = r.Suffix
	}
	return best
}

// Extract computes the literal runs of a compiled state sequence.
//
// Runs are split at every wildcard token: single-wildcards and collapsed
// multi-wildcards (the AfterMulti flag).
func Extract(states []pattern.State) Runs {
	runs := Runs{Inner: NewSeq(), Exact: true}
	if len(states) == 0 {
		runs.Complete = true
		return runs
	}

	var (
		buf      strings.Builder
		atStart  = true
		segments []segment
	)
	flush := func(atEnd bool) {
		if buf.Len() > 0 {
			segments = append(segments, segment{text: buf.String(), atStart: atStart, atEnd: atEnd})
			buf.Reset()
		}
		atStart = false
	}

	for _, s := range states {
		if s.AfterMulti {
			flush(false)
			runs.Exact = false
		}

		switch s.Kind {
		case pattern.KindLiteral:
			buf.WriteRune(s.Literal)
			runs.Runes++
			if s.Literal == utf8.RuneError {
				runs.Replacement = true
				runs.MinLen++
			} else {
				runs.MinLen += utf8.RuneLen(s.Literal)
			}
		case pattern.KindSingle:
			flush(false)
			runs.Runes++
			runs.MinLen++
		case pattern.KindEnd:
			flush(!s.AfterMulti)
		}
	}

	for _, seg := range segments {
		switch {
		case seg.atStart && seg.atEnd:
			runs.Prefix = NewLiteral(seg.text)
			runs.Complete = true
		case seg.atStart:
			runs.Prefix = NewLiteral(seg.text)
		case seg.atEnd:
			runs.Suffix = NewLiteral(seg.text)
		default:
			runs.Inner.push(NewLiteral(seg.text))
		}
	}
	return runs
}

// segment is a literal run together with its position in the pattern.
type segment struct {
	text    string
	atStart bool
	atEnd   bool
}
