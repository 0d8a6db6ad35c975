package scanner

import (
	"fmt"

	"github.com/npillmayer/lambdaman"
)

// EOF is the token type signalling end of input.
const EOF lambdaman.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lambdaman.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// UnexpectedInput is reported to a scanner's error handler whenever the
// scanner encounters input no token pattern matches.
type UnexpectedInput struct {
	Span lambdaman.Span // position of the offending input
	Text string         // the input which could not be consumed
}

func (ui *UnexpectedInput) Error() string {
	return fmt.Sprintf("unexpected input %q at %d", ui.Text, ui.Span.From())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   lambdaman.TokType
	lexeme string
	Val    interface{}
	span   lambdaman.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ lambdaman.TokType, lexeme string, span lambdaman.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() lambdaman.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lambdaman.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q%v>", t.kind, t.lexeme, t.span)
}
