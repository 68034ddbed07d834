package literal

import (
	"reflect"
	"testing"

	"github.com/coregx/wildmatch/pattern"
)

func extract(t *testing.T, src string) Runs {
	t.Helper()
	p, err := pattern.Compile(src, pattern.DefaultSymbols(), false, nil)
	if err != nil {
		t.Fatal(err)
	}
	return Extract(p.States())
}

func innerTexts(s *Seq) []string {
	var out []string
	for i := 0; i < s.Len(); i++ {
		out = append(out, s.Get(i).Text)
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		pattern  string
		prefix   string
		suffix   string
		inner    []string
		complete bool
		exact    bool
		runes    int
		minLen   int
	}{
		{"", "", "", nil, true, true, 0, 0},
		{"*", "", "", nil, false, false, 0, 0},
		{"abc", "abc", "", nil, true, true, 3, 3},
		{"abc*", "abc", "", nil, false, false, 3, 3},
		{"*abc", "", "abc", nil, false, false, 3, 3},
		{"*abc*", "", "", []string{"abc"}, false, false, 3, 3},
		{"ab?c*de*f", "ab", "f", []string{"c", "de"}, false, false, 7, 7},
		{"a?b", "a", "b", nil, false, true, 3, 3},
		{"??", "", "", nil, false, true, 2, 2},
		{"*?x?*", "", "", []string{"x"}, false, false, 3, 3},
		{"héllo*", "héllo", "", nil, false, false, 5, 6},
		{"a**b", "a", "b", nil, false, false, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			r := extract(t, tt.pattern)
			if r.Prefix.Text != tt.prefix {
				t.Errorf("Prefix = %q, want %q", r.Prefix.Text, tt.prefix)
			}
			if r.Suffix.Text != tt.suffix {
				t.Errorf("Suffix = %q, want %q", r.Suffix.Text, tt.suffix)
			}
			if got := innerTexts(r.Inner); !reflect.DeepEqual(got, tt.inner) {
				t.Errorf("Inner = %q, want %q", got, tt.inner)
			}
			if r.Complete != tt.complete {
				t.Errorf("Complete = %v, want %v", r.Complete, tt.complete)
			}
			if r.Exact != tt.exact {
				t.Errorf("Exact = %v, want %v", r.Exact, tt.exact)
			}
			if r.Runes != tt.runes {
				t.Errorf("Runes = %d, want %d", r.Runes, tt.runes)
			}
			if r.MinLen != tt.minLen {
				t.Errorf("MinLen = %d, want %d", r.MinLen, tt.minLen)
			}
			if r.Replacement {
				t.Error("Replacement = true without U+FFFD literal")
			}
		})
	}
}

func TestExtractReplacement(t *testing.T) {
	r := extract(t, "a\xffb*")
	if !r.Replacement {
		t.Error("Replacement = false for pattern with invalid byte")
	}
	if r.MinLen != 3 {
		t.Errorf("MinLen = %d, want 3 (U+FFFD may be a single input byte)", r.MinLen)
	}
}

func TestRunsLongest(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"*", ""},
		{"ab*cde*f", "cde"},
		{"abc*de", "abc"},
		{"a*bc*def", "def"},
		{"*ab*cd*", "ab"},
	}

	for _, tt := range tests {
		r := extract(t, tt.pattern)
		if got := r.Longest().Text; got != tt.want {
			t.Errorf("Longest(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}
