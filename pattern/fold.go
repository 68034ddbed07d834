package pattern

import (
	"unicode"
	"unicode/utf8"
)

// equalFold reports whether a and b are equal under simple Unicode case
// folding. ASCII pairs take a fast path.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}

	// SimpleFold cycles through the case orbit of a rune.
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
