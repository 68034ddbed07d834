package simd

import (
	"math/rand"
	"strings"
	"testing"
)

func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_haystack", "", "a", -1},
		{"needle_longer", "ab", "abc", -1},
		{"single_byte", "hello", "l", 2},
		{"at_start", "hello world", "hello", 0},
		{"at_end", "hello world", "world", 6},
		{"not_found", "hello world", "xyz", -1},
		{"repeated_prefix", "aaaaaabaaaa", "aab", 5},
		{"overlap", "abababc", "ababc", 2},
		{"rare_byte_first", "Qxxxx Qxxxy", "Qxxxy", 6},
		{"utf8", "café au lait", "é a", 3},
		{"whole", "needle", "needle", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memmem(tt.haystack, tt.needle); got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if got := NewSearcher(tt.needle).Index(tt.haystack); got != tt.want {
				t.Errorf("Searcher(%q).Index(%q) = %d, want %d", tt.needle, tt.haystack, got, tt.want)
			}
		})
	}
}

// TestMemmemRandom compares against strings.Index on a small alphabet, which
// produces many partial candidates.
func TestMemmemRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gen := func(n int) string {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = "abc"[rng.Intn(3)]
		}
		return string(buf)
	}

	for i := 0; i < 3000; i++ {
		haystack := gen(rng.Intn(80))
		needle := gen(1 + rng.Intn(5))

		want := strings.Index(haystack, needle)
		if got := Memmem(haystack, needle); got != want {
			t.Fatalf("Memmem(%q, %q) = %d, want %d", haystack, needle, got, want)
		}
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := strings.Repeat("Lorem ipsum dolor sit amet, ", 200) + "takimata"
	b.SetBytes(int64(len(haystack)))
	for i := 0; i < b.N; i++ {
		Memmem(haystack, "takimata")
	}
}
