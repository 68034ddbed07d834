package wildmatch

import (
	"regexp"
	"testing"

	"github.com/coregx/coregex"
)

const benchText = "Lorem ipsum dolor sit amet, " +
	"consetetur sadipscing elitr, sed diam nonumy eirmod tempor " +
	"invidunt ut labore et dolore magna aliquyam erat, sed diam " +
	"voluptua. At vero eos et accusam et justo duo dolores et ea " +
	"rebum. Stet clita kasd gubergren, no sea takimata sanctus est " +
	"Lorem ipsum dolor sit amet."

const (
	complexPattern     = "Lorem?ipsum*dolore*ea* ?????ata*."
	complexRegex       = `^Lorem.ipsum.*dolore.*ea.* .....ata.*\.$`
	mostComplexPattern = "?a*b*?**c?d****?e*f*g*?*h?i*?*?**j*******k"
	mostComplexRegex   = `^.a.*b.*..*.*c.d.*.*.*.*.e.*f.*g.*..*h.i.*..*..*.*j.*.*.*.*.*.*.*k$`
)

var textRegex = "^" + regexp.QuoteMeta(benchText) + "$"

func BenchmarkCompile(b *testing.B) {
	b.Run("text", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			Compile(benchText)
		}
	})
	b.Run("complex", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			Compile(mostComplexPattern)
		}
	})
	b.Run("text/regexp", func(b *testing.B) {
		for b.Loop() {
			regexp.MustCompile(textRegex)
		}
	})
	b.Run("complex/regexp", func(b *testing.B) {
		for b.Loop() {
			regexp.MustCompile(mostComplexRegex)
		}
	})
}

func BenchmarkMatch(b *testing.B) {
	cases := []struct {
		name    string
		pattern string
		regex   string
	}{
		{"text", benchText, textRegex},
		{"complex", complexPattern, complexRegex},
		{"mostComplex", mostComplexPattern, mostComplexRegex},
	}

	for _, c := range cases {
		p := Compile(c.pattern)
		re := regexp.MustCompile(c.regex)
		cre := coregex.MustCompile(c.regex)

		if p.MatchString(benchText) != re.MatchString(benchText) {
			b.Fatalf("%s: wildmatch and regexp disagree", c.name)
		}

		b.Run(c.name+"/wildmatch", func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			b.ReportAllocs()
			for b.Loop() {
				p.MatchString(benchText)
			}
		})
		b.Run(c.name+"/regexp", func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			for b.Loop() {
				re.MatchString(benchText)
			}
		})
		b.Run(c.name+"/coregex", func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			for b.Loop() {
				cre.MatchString(benchText)
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	set := NewSet(
		Compile("*.go"),
		Compile("*.rs"),
		Compile("*_test.*"),
		Compile("Makefile"),
		Compile("*dolore*aliquyam*"),
	)

	b.ReportAllocs()
	for b.Loop() {
		set.Matches(benchText)
	}
}
