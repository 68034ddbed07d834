// Package literal extracts the literal text a wildcard pattern requires.
//
// Every match of a compiled pattern must contain its literal runs: the text
// between wildcard tokens. Prefilters use them to reject inputs cheaply,
// before running the matcher.
//
// Key concepts:
//   - A Literal is a concrete UTF-8 sequence that must appear in matches
//   - A Seq is an ordered list of literals (the inner runs of a pattern)
//   - Runs groups the prefix, suffix and inner runs of one pattern
package literal

// Literal is a literal run of a pattern.
type Literal struct {
	// Text contains the UTF-8 encoded literal.
	Text string
}

// NewLiteral creates a new Literal from the given text.
func NewLiteral(text string) Literal {
	return Literal{Text: text}
}

// Len returns the length of the literal in bytes.
//
// Example:
//
//	lit := literal.NewLiteral("hello")
//	fmt.Println(lit.Len()) // Output: 5
func (l Literal) Len() int {
	return len(l.Text)
}

// IsEmpty reports whether the literal has no text.
func (l Literal) IsEmpty() bool {
	return l.Text == ""
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{text}"
func (l Literal) String() string {
	return "literal{" + l.Text + "}"
}

// Seq is an ordered sequence of literals.
//
// For the inner runs of a pattern the order is significant: a matching input
// contains every literal, non-overlapping, in sequence order.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral("foo"),
//	    literal.NewLiteral("bar"),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
// A nil sequence has length 0.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
// Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence contains no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// push appends a literal to the sequence.
func (s *Seq) push(lit Literal) {
	s.literals = append(s.literals, lit)
}

// TotalLen returns the sum of the literal lengths in bytes.
func (s *Seq) TotalLen() int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		n += s.literals[i].Len()
	}
	return n
}
