package termlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/npillmayer/lambdaman"
	"github.com/npillmayer/lambdaman/scanner"
	"github.com/npillmayer/lambdaman/term"
	"github.com/samber/lo"
)

// Parse parses an input string, given in term syntax (see package documentation).
// It returns the term, or an error in case of failure. Parse errors are of
// type *ParseError; no partial term is returned.
//
// The term is returned as written, i.e. single-term applications like `(x:x)` are
// preserved. Clients may call term.Simplify to drop them.
func Parse(input string) (term.Term, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, scan: scan}
	scan.SetErrorHandler(p.scannerError)
	p.next()
	t := p.parseInput()
	if p.err != nil {
		tracer().Debugf("%s", p.err.Diagnostic())
		return nil, p.err
	}
	tracer().Debugf("parsed %q as %v", input, t)
	return t, nil
}

// MustParse is like Parse, but panics if the input cannot be parsed.
// It simplifies handling of constant terms.
func MustParse(input string) term.Term {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}

// --- Errors ----------------------------------------------------------------

// ParseError is the error type for terms which cannot be parsed.
type ParseError struct {
	Input string         // the complete input
	Span  lambdaman.Span // position of the offending input
	Msg   string         // description of the problem
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Span.From(), e.Msg)
}

// Diagnostic renders the input line containing the error, with a marker underneath
// the offending position, followed by the error message:
//
//	f:(f g)
//	     ^
//	cannot find name "g" in scope [f]
//
func (e *ParseError) Diagnostic() string {
	from := int(e.Span.From())
	if from > len(e.Input) {
		from = len(e.Input)
	}
	start := strings.LastIndexByte(e.Input[:from], '\n') + 1
	end := strings.IndexByte(e.Input[from:], '\n')
	if end < 0 {
		end = len(e.Input)
	} else {
		end += from
	}
	var b strings.Builder
	b.WriteString(e.Input[start:end])
	b.WriteByte('\n')
	for _, r := range e.Input[start:from] { // keep tabs, so the marker lines up
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	if l := int(e.Span.Len()); l > 1 && from+l <= end {
		b.WriteString(strings.Repeat("~", l-1))
	}
	b.WriteByte('\n')
	b.WriteString(e.Msg)
	return b.String()
}

// --- Binder scope ----------------------------------------------------------

// binding is a name together with the number of binders between the position
// of its binder and the current position.
type binding struct {
	name  string
	depth int
}

// scope is the stack of bindings active at a position in the input, innermost
// last. Scopes are never modified in place: entering an abstraction creates a new
// scope, so sibling branches of the descent never see each other's bindings.
type scope []binding

func (sc scope) enter(name string) scope {
	inner := make(scope, len(sc), len(sc)+1)
	for i, b := range sc {
		inner[i] = binding{name: b.name, depth: b.depth + 1}
	}
	return append(inner, binding{name: name, depth: 0})
}

// resolve finds the innermost binding for name and returns its de Bruijn index.
func (sc scope) resolve(name string) (int, bool) {
	for i := len(sc) - 1; i >= 0; i-- {
		if sc[i].name == name {
			return sc[i].depth, true
		}
	}
	return 0, false
}

// names returns the distinct names in scope, innermost first.
func (sc scope) names() []string {
	names := lo.Map(sc, func(b binding, _ int) string {
		return b.name
	})
	return lo.Uniq(lo.Reverse(names))
}

// suggest finds a name in scope similar to name, or returns "".
func (sc scope) suggest(name string) string {
	names := sc.names()
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	candidates := lo.Filter(names, func(n string, _ int) bool {
		return fuzzy.MatchFold(n, name)
	})
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	input string
	scan  scanner.Tokenizer
	tok   lambdaman.Token // lookahead
	err   *ParseError     // first error encountered
}

func (p *parser) next() {
	p.tok = p.scan.NextToken()
}

func (p *parser) fail(span lambdaman.Span, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{
		Input: p.input,
		Span:  span,
		Msg:   fmt.Sprintf(format, args...),
	}
	tracer().Errorf("%s", p.err.Error())
}

func (p *parser) scannerError(err error) {
	if ui, ok := err.(*scanner.UnexpectedInput); ok {
		span := ui.Span
		if span.Len() == 0 {
			span[1] = span[0] + 1
		}
		p.fail(span, "unexpected character %q", p.input[span.From():span.To()])
		return
	}
	p.fail(p.tok.Span(), "%s", err.Error())
}

func (p *parser) at(typ lambdaman.TokType) bool {
	return p.err == nil && p.tok.TokType() == typ
}

// parseInput parses all the terms of the input. More than one term form an
// application.
func (p *parser) parseInput() term.Term {
	var terms []term.Term
	for p.err == nil && !p.at(scanner.EOF) {
		t := p.parseTerm(nil)
		if t == nil {
			return nil
		}
		terms = append(terms, t)
	}
	if p.err != nil {
		return nil
	}
	switch len(terms) {
	case 0:
		p.fail(p.tok.Span(), "empty input")
		return nil
	case 1:
		return terms[0]
	}
	return term.App(terms...)
}

// parseTerm parses a single term, starting at the lookahead token.
// It returns nil if an error occured.
func (p *parser) parseTerm(sc scope) term.Term {
	if p.err != nil {
		return nil
	}
	tok := p.tok
	switch int(tok.TokType()) {
	case '(':
		return p.parseApplication(sc)
	case ')':
		p.fail(tok.Span(), "unexpected ')'")
	case BinderToken:
		name := strings.TrimSuffix(tok.Lexeme(), ":")
		p.next()
		if p.at(scanner.EOF) || p.at(')') {
			p.fail(tok.Span(), "missing body for binder %q", name)
			return nil
		}
		tracer().Debugf("enter binder %q", name)
		body := p.parseTerm(sc.enter(name))
		if body == nil {
			return nil
		}
		return term.Abs(body)
	case NameToken:
		name := tok.Lexeme()
		index, ok := sc.resolve(name)
		if !ok {
			p.unbound(tok, sc)
			return nil
		}
		p.next()
		return term.Var(index)
	case AtomToken:
		p.next()
		return term.Atomize(strings.TrimPrefix(tok.Lexeme(), "'"))
	case int(scanner.EOF):
		p.fail(tok.Span(), "unexpected end of input")
	default:
		p.fail(tok.Span(), "unexpected token %q", tok.Lexeme())
	}
	return nil
}

// parseApplication parses '(' Term* ')'.
func (p *parser) parseApplication(sc scope) term.Term {
	open := p.tok
	p.next()
	var terms []term.Term
	for p.err == nil && !p.at(')') {
		if p.at(scanner.EOF) {
			p.fail(open.Span(), "unterminated group, missing ')'")
			return nil
		}
		t := p.parseTerm(sc)
		if t == nil {
			return nil
		}
		terms = append(terms, t)
	}
	if p.err != nil {
		return nil
	}
	if len(terms) == 0 {
		p.fail(open.Span().Extend(p.tok.Span()), "empty application")
		return nil
	}
	p.next() // consume ')'
	return term.App(terms...)
}

func (p *parser) unbound(tok lambdaman.Token, sc scope) {
	name := tok.Lexeme()
	if suggestion := sc.suggest(name); suggestion != "" {
		p.fail(tok.Span(), "cannot find name %q in scope %v; did you mean %q?", name, sc.names(), suggestion)
		return
	}
	p.fail(tok.Span(), "cannot find name %q in scope %v", name, sc.names())
}
