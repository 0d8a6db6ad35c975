package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"x",
	"x:(f x)",
	"'TRUE 'FALSE",
	"  a:b:(a  b)  ",
	"(f x) ; g",
}

var tokenCounts = []int{1, 5, 2, 6, 5}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.scanner")
	defer teardown()
	//
	LM := makeTestAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		errcnt := 0
		sc.SetErrorHandler(func(e error) {
			t.Logf("scanner error: %v", e)
			errcnt++
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if i < len(inputStrings)-1 && errcnt > 0 {
			t.Errorf("Expected input #%d to scan without errors", i)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestUnexpectedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.scanner")
	defer teardown()
	//
	LM := makeTestAdapter(t)
	sc, err := LM.Scanner("(f ; x)")
	if err != nil {
		t.Fatal(err)
	}
	var unexpected *UnexpectedInput
	sc.SetErrorHandler(func(e error) {
		if ui, ok := e.(*UnexpectedInput); ok && unexpected == nil {
			unexpected = ui
		}
	})
	for token := sc.NextToken(); token.TokType() != EOF; token = sc.NextToken() {
		t.Logf("token %v", token)
	}
	if unexpected == nil {
		t.Fatalf("expected scanner to report unexpected input")
	}
	if unexpected.Span.From() != 3 {
		t.Errorf("expected unexpected input at position 3, is %d", unexpected.Span.From())
	}
}

func TestSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.scanner")
	defer teardown()
	//
	LM := makeTestAdapter(t)
	sc, _ := LM.Scanner("ab:  cd")
	binder := sc.NextToken()
	if binder.Lexeme() != "ab:" || binder.Span().From() != 0 || binder.Span().To() != 3 {
		t.Errorf("unexpected binder token %v", binder)
	}
	name := sc.NextToken()
	if name.Lexeme() != "cd" || name.Span().From() != 5 || name.Span().To() != 7 {
		t.Errorf("unexpected name token %v", name)
	}
	if eof := sc.NextToken(); eof.TokType() != EOF {
		t.Errorf("expected EOF, got %v", eof)
	}
}

// --- Test lexer ------------------------------------------------------------

var literals = []string{"(", ")"}

var tokenIds = map[string]int{
	"NAME":   10,
	"BINDER": 11,
	"ATOM":   12,
	"(":      '(',
	")":      ')',
}

func makeTestAdapter(t *testing.T) *LMAdapter {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*:`), MakeToken("BINDER", tokenIds["BINDER"]))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("NAME", tokenIds["NAME"]))
		lexer.Add([]byte(`\'[^ \t\n\r\(\)]*`), MakeToken("ATOM", tokenIds["ATOM"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}
