package simd

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Algorithm:
//  1. Pick the rarest byte of needle using the ByteFrequencies table
//  2. Use Memchr to find candidates for this byte in haystack
//  3. Verify the full needle at each candidate
//
// Example:
//
//	pos := simd.Memmem("aaaaaabaaaa", "aab")
//	// pos == 5
func Memmem(haystack, needle string) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics strings.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	return memmemRare(haystack, needle, RareByteIndex(needle))
}

// memmemRare runs the candidate/verify loop anchored on needle[rareIdx].
func memmemRare(haystack, needle string, rareIdx int) int {
	needleLen := len(needle)
	haystackLen := len(haystack)
	rareByte := needle[rareIdx]

	// Candidates before rareIdx cannot hold the whole needle.
	searchStart := rareIdx
	lastStart := haystackLen - needleLen
	for searchStart < haystackLen {
		pos := Memchr(haystack[searchStart:], rareByte)
		if pos == -1 {
			return -1
		}
		pos += searchStart

		start := pos - rareIdx
		if start > lastStart {
			return -1
		}
		if haystack[start:start+needleLen] == needle {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}

// Searcher is a precomputed substring search for a fixed needle.
// It is immutable and safe for concurrent use.
type Searcher struct {
	needle  string
	rareIdx int
}

// NewSearcher precomputes the rare byte of needle.
func NewSearcher(needle string) *Searcher {
	return &Searcher{
		needle:  needle,
		rareIdx: RareByteIndex(needle),
	}
}

// Needle returns the searched literal.
func (s *Searcher) Needle() string {
	return s.needle
}

// Index is Memmem with the rare byte selection done once.
func (s *Searcher) Index(haystack string) int {
	switch {
	case len(s.needle) == 0:
		return 0
	case len(s.needle) > len(haystack):
		return -1
	case len(s.needle) == 1:
		return Memchr(haystack, s.needle[0])
	}
	return memmemRare(haystack, s.needle, s.rareIdx)
}
