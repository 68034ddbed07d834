// Package simd provides fast byte and substring search over strings.
//
// The wildcard matcher and its prefilters spend most of their time skipping
// input that a multi-wildcard absorbs, which reduces to "find the next
// occurrence of this byte or this literal". The package picks between the
// runtime's vectorized search kernels and a pure Go SWAR (SIMD Within A
// Register) implementation depending on the input size. The CPU features
// reported by golang.org/x/sys/cpu only move the length at which the
// runtime kernel takes over.
package simd

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPU feature detection flags set at package initialization.
var (
	// hasAVX2 reports 256-bit vector support on x86-64.
	hasAVX2 = cpu.X86.HasAVX2

	// hasASIMD reports Advanced SIMD (NEON) support on arm64.
	hasASIMD = cpu.ARM64.HasASIMD
)

const (
	// wideThreshold is the cutover on CPUs with wide vector units.
	wideThreshold = 32

	// baseThreshold is the cutover elsewhere. The runtime kernel still uses
	// the baseline vector unit (SSE2 on amd64) but needs longer inputs to
	// amortize its setup against SWAR.
	baseThreshold = 64
)

// vectorThreshold is the haystack length from which the runtime's vectorized
// kernel beats SWAR on this CPU.
var vectorThreshold = pickThreshold(hasAVX2 || hasASIMD)

func pickThreshold(wide bool) int {
	if wide {
		return wideThreshold
	}
	return baseThreshold
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Short inputs are scanned 8 bytes at a time with SWAR. Longer inputs use
// the runtime's vectorized search; AVX2/ASIMD capable CPUs switch earlier.
//
// Example:
//
//	pos := simd.Memchr("hello world", 'o')
//	// pos == 4
func Memchr(haystack string, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if len(haystack) >= vectorThreshold {
		return strings.IndexByte(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
//
// Used for ASCII case-insensitive search where both letter cases are
// candidates.
func Memchr2(haystack string, needle1, needle2 byte) int {
	if needle1 == needle2 {
		return Memchr(haystack, needle1)
	}
	return memchr2Generic(haystack, needle1, needle2)
}
