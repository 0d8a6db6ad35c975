package scanner

import (
	"strings"

	"github.com/npillmayer/lambdaman"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Adapter ---------------------------------------------------------------

// LMAdapter wraps a compiled lexmachine lexer. It creates scanners implementing
// Tokenizer.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. init adds the token patterns to
// the lexer. Literals, i.e. tokens matching exactly one fixed string like "(",
// are added afterwards. tokenIds maps token names and literals to token types.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	lexer := lexmachine.NewLexer()
	init(lexer)
	for _, lit := range literals {
		lexer.Add(quoteLiteral(lit), MakeToken(lit, tokenIds[lit]))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &LMAdapter{Lexer: lexer}, nil
}

// quoteLiteral escapes every character of a literal, making it a pattern.
func quoteLiteral(lit string) []byte {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return []byte(b.String())
}

// Scanner creates a scanner for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// --- Scanner ---------------------------------------------------------------

// LMScanner scans a single input with a lexmachine DFA.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner. A nil handler resets
// error handling to tracing.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. At the end of input it returns
// a token of type EOF, with an empty span at the end position.
//
// Input which does not match any token pattern is reported to the error handler
// as an *UnexpectedInput and skipped.
func (lms *LMScanner) NextToken() lambdaman.Token {
	for {
		tok, err, eof := lms.scanner.Next()
		switch {
		case eof:
			return lms.eof()
		case err != nil:
			if !lms.recover(err) {
				return lms.eof()
			}
		default:
			token := tok.(*lexmachine.Token)
			tracer().Debugf("token %d = %q at %d", token.Type, token.Lexeme, token.TC)
			from := uint64(token.TC)
			return MakeDefaultToken(
				lambdaman.TokType(token.Type),
				string(token.Lexeme),
				lambdaman.Span{from, from + uint64(len(token.Lexeme))},
			)
		}
	}
}

func (lms *LMScanner) eof() lambdaman.Token {
	pos := uint64(lms.scanner.TC)
	return MakeDefaultToken(EOF, "", lambdaman.Span{pos, pos})
}

// recover reports a scanner error and moves past the offending input. It
// returns false if scanning cannot continue.
func (lms *LMScanner) recover(err error) bool {
	ui, ok := err.(*machines.UnconsumedInput)
	if !ok {
		lms.Error(err)
		return false
	}
	lms.Error(&UnexpectedInput{
		Span: lambdaman.Span{uint64(ui.StartTC), uint64(ui.FailTC)},
		Text: string(ui.Text),
	})
	if ui.FailTC > ui.StartTC {
		lms.scanner.TC = ui.FailTC
	} else {
		lms.scanner.TC = ui.StartTC + 1
	}
	return true
}

// --- Actions ---------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of type id.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
