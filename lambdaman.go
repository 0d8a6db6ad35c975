package lambdaman

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the term syntax.
//
// An example would be a token for a binder:
//
//    TokType = Binder      // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "x:"        // lexeme how it appeared in the input stream
//    Value   = "x"         // the name being bound
//    Span    = 3…5         // occured from position 3 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Parsers use spans
// to report the position of errors. A span denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
