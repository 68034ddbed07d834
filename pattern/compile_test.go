package pattern

import (
	"errors"
	"testing"
)

func mustCompile(t testing.TB, src string, caseInsensitive bool) *Program {
	t.Helper()
	p, err := Compile(src, DefaultSymbols(), caseInsensitive, nil)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", src, err)
	}
	return p
}

func TestCompileStates(t *testing.T) {
	tests := []struct {
		pattern string
		want    []State
	}{
		{"", nil},
		{"*", []State{{Kind: KindEnd, AfterMulti: true}}},
		{"a", []State{
			{Kind: KindLiteral, Literal: 'a'},
			{Kind: KindEnd},
		}},
		{"a*", []State{
			{Kind: KindLiteral, Literal: 'a'},
			{Kind: KindEnd, AfterMulti: true},
		}},
		{"*?b", []State{
			{Kind: KindSingle, AfterMulti: true},
			{Kind: KindLiteral, Literal: 'b'},
			{Kind: KindEnd},
		}},
		{"a***c", []State{
			{Kind: KindLiteral, Literal: 'a'},
			{Kind: KindLiteral, Literal: 'c', AfterMulti: true},
			{Kind: KindEnd},
		}},
		{"é?", []State{
			{Kind: KindLiteral, Literal: 'é'},
			{Kind: KindSingle},
			{Kind: KindEnd},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := mustCompile(t, tt.pattern, false).States()
			if len(got) != len(tt.want) {
				t.Fatalf("Compile(%q) has %d states, want %d: %+v", tt.pattern, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("state %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCompileCollapsesMultiWildcards(t *testing.T) {
	base := mustCompile(t, "a*c", false)
	for _, src := range []string{"a**c", "a***c", "a*****c"} {
		p := mustCompile(t, src, false)
		if !p.Equal(base) {
			t.Errorf("Compile(%q) != Compile(%q)", src, "a*c")
		}
		if p.String() != "a*c" {
			t.Errorf("Compile(%q).String() = %q, want %q", src, p.String(), "a*c")
		}
	}
}

func TestProgramEqual(t *testing.T) {
	tests := []struct {
		a, b   string
		aCI    bool
		bCI    bool
		wantEq bool
	}{
		{"abc", "abc", false, false, true},
		{"abc", "abc", true, true, true},
		{"abc", "abc", false, true, false},
		{"a*?", "a**?", false, false, true},
		{"a?", "a*", false, false, false},
		{"", "", false, false, true},
		{"", "*", false, false, false},
		{"abc", "ABC", true, true, false},
	}

	for _, tt := range tests {
		a := mustCompile(t, tt.a, tt.aCI)
		b := mustCompile(t, tt.b, tt.bCI)
		if got := a.Equal(b); got != tt.wantEq {
			t.Errorf("Equal(%q/%v, %q/%v) = %v, want %v", tt.a, tt.aCI, tt.b, tt.bCI, got, tt.wantEq)
		}
	}

	var nilProg *Program
	if nilProg.Equal(mustCompile(t, "a", false)) {
		t.Error("nil program equals non-nil program")
	}
}

func TestProgramEqualIgnoresSymbols(t *testing.T) {
	std := mustCompile(t, "a*b?c", false)
	sql, err := Compile("a%b_c", Symbols{Multi: '%', Single: '_'}, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !std.Equal(sql) {
		t.Error("programs with the same structure but different symbols should be equal")
	}
	if got := sql.String(); got != "a%b_c" {
		t.Errorf("String() = %q, want %q", got, "a%b_c")
	}
}

func TestProgramString(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"", ""},
		{"*", "*"},
		{"***", "*"},
		{"a**b??*", "a*b??*"},
		{"**?**", "*?*"},
		{"héllo wörld", "héllo wörld"},
		{"bad\xffbyte", "bad�byte"},
	}

	for _, tt := range tests {
		if got := mustCompile(t, tt.pattern, false).String(); got != tt.want {
			t.Errorf("Compile(%q).String() = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestMaxSingleRun(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"", 0},
		{"abc", 0},
		{"?", 1},
		{"?a*??*???b", 3},
		{"*???", 3},
		{"??*?", 2},
		{"?a?", 2},
	}

	for _, tt := range tests {
		if got := mustCompile(t, tt.pattern, false).MaxSingleRun(); got != tt.want {
			t.Errorf("MaxSingleRun(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}
}

func TestCompileFixedStorage(t *testing.T) {
	// "abc" needs three literal states plus the end state
	p, err := Compile("abc", DefaultSymbols(), false, NewFixed(4))
	if err != nil {
		t.Fatalf("Compile with exact capacity failed: %v", err)
	}
	if !p.IsMatch("abc") {
		t.Error("program backed by fixed storage should match")
	}

	_, err = Compile("abc", DefaultSymbols(), false, NewFixed(3))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("Compile over capacity error = %v, want ErrCapacity", err)
	}
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("error %T is not *CompileError", err)
	}
	if cerr.Pattern != "abc" {
		t.Errorf("CompileError.Pattern = %q, want %q", cerr.Pattern, "abc")
	}

	// Collapsed multi-wildcards do not consume capacity
	if _, err := Compile("a****", DefaultSymbols(), false, NewFixed(2)); err != nil {
		t.Errorf("Compile(%q) with capacity 2 failed: %v", "a****", err)
	}

	// The empty pattern needs no states at all
	if _, err := Compile("", DefaultSymbols(), false, NewFixed(0)); err != nil {
		t.Errorf("Compile(\"\") with capacity 0 failed: %v", err)
	}
}

func TestSymbolsValidate(t *testing.T) {
	tests := []struct {
		name string
		syms Symbols
		want error
	}{
		{"default", DefaultSymbols(), nil},
		{"sql", Symbols{Multi: '%', Single: '_'}, nil},
		{"unicode", Symbols{Multi: '…', Single: '·'}, nil},
		{"same", Symbols{Multi: '*', Single: '*'}, ErrSameSymbols},
		{"surrogate", Symbols{Multi: 0xD800, Single: '?'}, ErrInvalidSymbol},
		{"negative", Symbols{Multi: '*', Single: -1}, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.syms.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Pattern: "abc", Err: ErrCapacity}
	want := `wildcard compilation failed for pattern "abc": pattern exceeds state capacity`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &CompileError{Err: ErrCapacity}
	want = "wildcard compilation failed: pattern exceeds state capacity"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindLiteral: "Literal",
		KindSingle:  "Single",
		KindEnd:     "End",
		Kind(42):    "Unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
