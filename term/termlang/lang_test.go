package termlang

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lambdaman/scanner"
	"github.com/npillmayer/lambdaman/term"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.termlang")
	defer teardown()
	//
	lex, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	input := "f:x:(f 'TRUE x1)"
	scan, err := lex.Scanner(input)
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Error(e)
	})
	var types []int
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		t.Logf("token = %q with type = %d", token.Lexeme(), token.TokType())
		types = append(types, int(token.TokType()))
	}
	expected := []int{BinderToken, BinderToken, '(', NameToken, AtomToken, NameToken, ')'}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(types))
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("token #%d: expected type %d, got %d", i, expected[i], types[i])
		}
	}
}

func TestToken(t *testing.T) {
	if _, id := Token("("); id != '(' {
		t.Errorf("expected literal token to have its character as type, got %d", id)
	}
	if _, id := Token("BINDER"); id != BinderToken {
		t.Errorf("expected BINDER to be %d, got %d", BinderToken, id)
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.termlang")
	defer teardown()
	//
	var cases = []struct {
		input    string
		expected term.Term
	}{
		{"f:x:(f(f x))", term.Abs(term.Abs(term.App(term.Var(1), term.App(term.Var(1), term.Var(0)))))},
		{"x:y:x", term.Abs(term.Abs(term.Var(1)))},
		{"x:x:x", term.Abs(term.Abs(term.Var(0)))},
		{"'TRUE", term.Atomize("TRUE")},
		{"('x)", term.App(term.Atomize("x"))},
		{"x1:x1", term.Abs(term.Var(0))},
		{"f:(f 'a'b)", term.Abs(term.App(term.Var(0), term.Atomize("a'b")))},
		{"x:(x x:(x y:x))", term.Abs(term.App(term.Var(0), term.Abs(term.App(term.Var(0), term.Abs(term.Var(1))))))},
		{"  \tx:\n x ", term.Abs(term.Var(0))},
		{"(f:x:f) 'TRUE 'FALSE", term.App(
			term.App(term.Abs(term.Abs(term.Var(1)))),
			term.Atomize("TRUE"), term.Atomize("FALSE"))},
		{"'x(y:y)", term.App(term.Atomize("x"), term.App(term.Abs(term.Var(0))))},
	}
	for i, c := range cases {
		x, err := Parse(c.input)
		if err != nil {
			t.Errorf("#%d: unexpected error for %q: %v", i, c.input, err)
			continue
		}
		if !term.Equal(x, c.expected) {
			t.Errorf("#%d: expected %q to parse as %v, got %v", i, c.input, c.expected, x)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.termlang")
	defer teardown()
	//
	var cases = []struct {
		input string
		pos   uint64
		msg   string
	}{
		{"x", 0, "cannot find name"},
		{"f:(f g)", 5, "cannot find name \"g\""},
		{"a:b:c:(a b d)", 11, "cannot find name \"d\""},
		{"(a:a b:a)", 7, "cannot find name \"a\""},
		{"(x:x", 0, "unterminated group"},
		{"x:x)", 3, "unexpected ')'"},
		{"()", 0, "empty application"},
		{"x:", 0, "missing body"},
		{"(x:)", 1, "missing body"},
		{"", 0, "empty input"},
		{"   ", 3, "empty input"},
		{"x:(x ; x)", 5, "unexpected character"},
	}
	for i, c := range cases {
		x, err := Parse(c.input)
		if err == nil {
			t.Errorf("#%d: expected %q to fail, got %v", i, c.input, x)
			continue
		}
		if x != nil {
			t.Errorf("#%d: expected no term for failing input %q", i, c.input)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("#%d: expected a *ParseError, got %T", i, err)
			continue
		}
		if perr.Span.From() != c.pos {
			t.Errorf("#%d: expected error for %q at %d, is at %d", i, c.input, c.pos, perr.Span.From())
		}
		if !strings.Contains(perr.Msg, c.msg) {
			t.Errorf("#%d: expected message to contain %q, is %q", i, c.msg, perr.Msg)
		}
	}
}

func TestUnboundAtAnyDepth(t *testing.T) {
	input := "z"
	for depth := 0; depth < 10; depth++ {
		if _, err := Parse(input); err == nil {
			t.Errorf("unbound name at depth %d should not parse: %q", depth, input)
		}
		input = "x:(x " + input + ")"
	}
}

func TestDiagnostic(t *testing.T) {
	_, err := Parse("f:(f g)")
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected a *ParseError, got %v", err)
	}
	expected := "f:(f g)\n     ^\ncannot find name \"g\" in scope [f]"
	if d := perr.Diagnostic(); d != expected {
		t.Errorf("expected diagnostic\n%s\ngot\n%s", expected, d)
	}
	_, err = Parse("x:\n\t(x yy)")
	perr = err.(*ParseError)
	expected = "\t(x yy)\n\t   ^~\ncannot find name \"yy\" in scope [x]"
	if d := perr.Diagnostic(); d != expected {
		t.Errorf("expected diagnostic\n%s\ngot\n%s", expected, d)
	}
}

func TestSuggestion(t *testing.T) {
	_, err := Parse("foo:bar:(fo bar)")
	if err == nil {
		t.Fatalf("expected unbound name to fail")
	}
	if !strings.Contains(err.Error(), `did you mean "foo"`) {
		t.Errorf("expected a suggestion for foo, got %q", err.Error())
	}
	_, err = Parse("n:(nn n)")
	if err == nil || !strings.Contains(err.Error(), `did you mean "n"`) {
		t.Errorf("expected a suggestion for n, got %v", err)
	}
	_, err = Parse("a:(q a)")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("expected no suggestion, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.termlang")
	defer teardown()
	//
	inputs := []string{
		"(a:b:(a c:d:e:(d(c d e))b) (a:b:(a b)) (a:b:(a(a b))))",
		"((m:n:(n(n:f:x:(n(g:h:(h(g f)))(u:x)(u:u)))m)) (f:x:(f(f x))) (f:x:(f x)))",
		"x:y:f:(f x y)",
		"(f:x:f) 'TRUE 'FALSE",
	}
	for i, input := range inputs {
		x := term.Simplify(MustParse(input))
		s, err := term.Format(x)
		if err != nil {
			t.Errorf("#%d: cannot format %v: %v", i, x, err)
			continue
		}
		y, err := Parse(s)
		if err != nil {
			t.Errorf("#%d: cannot re-parse %q: %v", i, s, err)
			continue
		}
		if !term.Equal(x, y) {
			t.Errorf("#%d: round trip changed term: %v vs %v", i, x, y)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustParse to panic on unbound name")
		}
	}()
	MustParse("x")
}
