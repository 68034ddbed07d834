package pattern

import "unicode/utf8"

// noAnchor marks that no multi-wildcard has been passed yet.
const noAnchor = -1

// inlineRun is the longest single-wildcard run whose replay buffers live on
// the stack of IsMatch.
const inlineRun = 16

// matcher holds the per-call state of one IsMatch call.
//
// The window of consumed input since the anchor is never stored: every
// state in [anchor, idx) consumed exactly one rune, which is either the
// state's literal or, for single-wildcard states, the rune recorded in
// pending. That is enough to re-align the window after a mismatch without
// rescanning the input.
type matcher struct {
	prog *Program

	// anchor is the index of the last state matched right after a
	// multi-wildcard, or noAnchor.
	anchor int

	// pending holds the runes consumed by single-wildcard states in
	// [anchor, idx), in order.
	pending []rune

	// scratch is the replay output buffer, swapped with pending on success.
	scratch []rune
}

// IsMatch reports whether input matches the whole pattern.
//
// The scan is a single forward pass over input. On a mismatch the matcher
// falls back to the most recent multi-wildcard anchor and lets the wildcard
// absorb one more rune by re-aligning the states after the anchor against
// the window it already consumed. Input is never rescanned, and
// backtracking never reaches past the last anchor.
//
// IsMatch is safe for concurrent use.
func (p *Program) IsMatch(input string) bool {
	if len(p.states) == 0 {
		return input == ""
	}

	var buf [2 * inlineRun]rune
	m := matcher{prog: p, anchor: noAnchor}
	if p.maxSingleRun <= inlineRun {
		m.pending = buf[:0:inlineRun]
		m.scratch = buf[inlineRun:inlineRun:len(buf)]
	} else {
		m.pending = make([]rune, 0, p.maxSingleRun)
		m.scratch = make([]rune, 0, p.maxSingleRun)
	}
	return m.run(input)
}

func (m *matcher) run(input string) bool {
	states := m.prog.states
	skips := m.prog.skips
	idx := 0

	for pos := 0; pos < len(input); {
		c, size := rune(input[pos]), 1
		if c >= utf8.RuneSelf {
			c, size = utf8.DecodeRuneInString(input[pos:])
		}

		s := &states[idx]
		switch {
		case s.Kind == KindSingle:
			if s.AfterMulti {
				m.setAnchor(idx)
			}
			if m.anchor != noAnchor {
				m.pending = append(m.pending, c)
			}
			idx++
			pos += size

		case s.Kind == KindLiteral && m.prog.equal(s.Literal, c):
			if s.AfterMulti {
				m.setAnchor(idx)
			}
			idx++
			pos += size

		case s.AfterMulti:
			// The multi-wildcard before s absorbs c.
			if s.Kind == KindEnd {
				return true
			}
			pos += size
			if skips != nil && skips[idx].needle != "" {
				next := skips[idx].next(input[pos:])
				if next < 0 {
					return false
				}
				pos += next
			}

		default:
			if m.anchor == noAnchor {
				return false
			}
			// c is dispatched again against the re-aligned state.
			idx = m.replay(idx)
		}
	}

	return states[idx].Kind == KindEnd
}

// setAnchor records idx as the new anchor. Runes consumed before it can no
// longer be re-aligned, so pending restarts empty.
func (m *matcher) setAnchor(idx int) {
	m.anchor = idx
	m.pending = m.pending[:0]
}

// replay handles a mismatch at state cur. The states in [anchor, cur)
// consumed a window of k = cur-anchor runes; the multi-wildcard before the
// anchor now absorbs 1, 2, ... more of them. The first shift whose remaining
// window re-aligns with the states after the anchor wins. If none does the
// wildcard absorbs the whole window and matching restarts at the anchor.
//
// Shifts are tried smallest first, so the wildcard always absorbs as little
// as possible. Every call strictly reduces cur-anchor, so a single input
// rune triggers at most one replay per state between the anchor and cur.
func (m *matcher) replay(cur int) int {
	k := cur - m.anchor
	for shift := 1; shift < k; shift++ {
		if m.realign(shift, k) {
			return m.anchor + k - shift
		}
	}
	m.pending = m.pending[:0]
	return m.anchor
}

// realign checks whether the last k-shift runes of the window are accepted
// by the k-shift states starting at the anchor. On success the runes taken
// by single-wildcard states become the new pending buffer.
func (m *matcher) realign(shift, k int) bool {
	states := m.prog.states
	a := m.anchor

	// q indexes pending at the first rune of the shifted window.
	q := 0
	for i := a; i < a+shift; i++ {
		if states[i].Kind == KindSingle {
			q++
		}
	}

	m.scratch = m.scratch[:0]
	for i := 0; i < k-shift; i++ {
		src := &states[a+shift+i]
		c := src.Literal
		if src.Kind == KindSingle {
			c = m.pending[q]
			q++
		}

		dst := &states[a+i]
		if dst.Kind == KindSingle {
			m.scratch = append(m.scratch, c)
			continue
		}
		if !m.prog.equal(dst.Literal, c) {
			return false
		}
	}

	m.pending, m.scratch = m.scratch, m.pending
	return true
}

// equal compares a pattern literal with an input rune.
func (p *Program) equal(lit, c rune) bool {
	if lit == c {
		return true
	}
	return p.caseInsensitive && equalFold(lit, c)
}
