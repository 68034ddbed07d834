package literal_test

import (
	"fmt"

	"github.com/coregx/wildmatch/literal"
	"github.com/coregx/wildmatch/pattern"
)

// ExampleExtract shows the literal runs of a pattern.
func ExampleExtract() {
	prog, _ := pattern.Compile("log-??-*.txt*backup", pattern.DefaultSymbols(), false, nil)
	runs := literal.Extract(prog.States())

	fmt.Println("prefix:", runs.Prefix.Text)
	for i := 0; i < runs.Inner.Len(); i++ {
		fmt.Println("inner:", runs.Inner.Get(i).Text)
	}
	fmt.Println("suffix:", runs.Suffix.Text)
	fmt.Println("min length:", runs.MinLen)
	// Output:
	// prefix: log-
	// inner: -
	// inner: .txt
	// suffix: backup
	// min length: 17
}
