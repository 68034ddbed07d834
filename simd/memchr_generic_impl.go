package simd

import "math/bits"

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// load64 reads 8 bytes of s starting at i as a little-endian uint64.
// The compiler merges this pattern into a single load.
func load64(s string, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// zeroBytes returns a mask with the high bit set in every byte of v that is
// zero (Hacker's Delight). Only the lowest set bit is exact, which is all
// the callers need.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// memchrGeneric implements pure Go byte search using SWAR (SIMD Within A Register).
// It processes 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect zero bytes and locate the first one with a trailing zero count
func memchrGeneric(haystack string, needle byte) int {
	n := len(haystack)

	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		if z := zeroBytes(load64(haystack, i) ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// memchr2Generic searches for either of two bytes using SWAR, checking both
// needles against the same 8-byte chunk.
func memchr2Generic(haystack string, needle1, needle2 byte) int {
	n := len(haystack)

	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := load64(haystack, i)
		if z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}
