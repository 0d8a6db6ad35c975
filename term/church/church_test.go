package church

import (
	"strings"
	"testing"

	"github.com/npillmayer/lambdaman/term"
	"github.com/npillmayer/lambdaman/term/reduce"
	"github.com/npillmayer/lambdaman/term/termlang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func normalize(t *testing.T, x term.Term) term.Term {
	x, stats, err := reduce.NewNormalizer(reduce.MaxSteps(10000)).Normalize(x)
	if err != nil {
		t.Fatalf("cannot normalize: %v", err)
	}
	t.Logf("normal form %v after %d steps", x, stats.Steps)
	return x
}

func TestNumeralRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.reduce")
	defer teardown()
	//
	for n := 0; n <= 12; n++ {
		src := "f:x:" + strings.Repeat("(f ", n) + "x" + strings.Repeat(")", n)
		expected := term.Simplify(termlang.MustParse(src))
		x := Numeral(n)
		if !term.Equal(x, expected) {
			t.Errorf("expected numeral %d to be %q, is %v", n, src, x)
		}
		if m, ok := DecodeNumeral(normalize(t, x)); !ok || m != n {
			t.Errorf("expected numeral to decode as %d, got %d", n, m)
		}
	}
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.reduce")
	defer teardown()
	//
	var cases = []struct {
		name     string
		x        term.Term
		expected int
	}{
		{"succ 1", Apply(Succ(), Numeral(1)), 2},
		{"succ 0", Apply(Succ(), Numeral(0)), 1},
		{"add 2 2", Apply(Add(), Numeral(2), Numeral(2)), 4},
		{"add 0 3", Apply(Add(), Numeral(0), Numeral(3)), 3},
		{"mul 2 3", Apply(Mul(), Numeral(2), Numeral(3)), 6},
		{"mul 3 0", Apply(Mul(), Numeral(3), Numeral(0)), 0},
		{"pred 3", Apply(Pred(), Numeral(3)), 2},
		{"pred 0", Apply(Pred(), Numeral(0)), 0},
		{"sub 5 2", Apply(Sub(), Numeral(5), Numeral(2)), 3},
		{"sub 2 5", Apply(Sub(), Numeral(2), Numeral(5)), 0},
		{"succ (add 1 2)", Apply(Succ(), Apply(Add(), Numeral(1), Numeral(2))), 4},
	}
	for _, c := range cases {
		x := normalize(t, c.x)
		n, ok := DecodeNumeral(x)
		if !ok {
			t.Errorf("%s: expected a numeral, got %v", c.name, x)
			continue
		}
		if n != c.expected {
			t.Errorf("%s: expected %d, got %d", c.name, c.expected, n)
		}
	}
}

func TestBooleans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.reduce")
	defer teardown()
	//
	yes, no := term.Atomize("TRUE"), term.Atomize("FALSE")
	if x := normalize(t, Apply(True(), yes, no)); !term.Equal(x, yes) {
		t.Errorf("expected true to select 'TRUE, got %v", x)
	}
	if x := normalize(t, Apply(False(), yes, no)); !term.Equal(x, no) {
		t.Errorf("expected false to select 'FALSE, got %v", x)
	}
	var cases = []struct {
		name     string
		x        term.Term
		expected bool
	}{
		{"not true", Apply(Not(), True()), false},
		{"not false", Apply(Not(), False()), true},
		{"and true false", Apply(And(), True(), False()), false},
		{"and true true", Apply(And(), True(), True()), true},
		{"or false true", Apply(Or(), False(), True()), true},
		{"or false false", Apply(Or(), False(), False()), false},
		{"zero? 0", Apply(IsZero(), Numeral(0)), true},
		{"zero? 2", Apply(IsZero(), Numeral(2)), false},
	}
	for _, c := range cases {
		x := normalize(t, c.x)
		b, ok := DecodeBool(x)
		if !ok || b != c.expected {
			t.Errorf("%s: expected %v, got %v", c.name, c.expected, x)
		}
	}
}

func TestPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lambdaman.reduce")
	defer teardown()
	//
	a, b := term.Atomize("a"), term.Atomize("b")
	if x := normalize(t, Apply(Fst(), Apply(Pair(), a, b))); !term.Equal(x, a) {
		t.Errorf("expected first of pair to be 'a, got %v", x)
	}
	if x := normalize(t, Apply(Snd(), Apply(Pair(), a, b))); !term.Equal(x, b) {
		t.Errorf("expected second of pair to be 'b, got %v", x)
	}
}

func TestDecodeRejects(t *testing.T) {
	if _, ok := DecodeNumeral(True()); ok {
		t.Errorf("true is not a numeral")
	}
	if _, ok := DecodeNumeral(term.Atomize("1")); ok {
		t.Errorf("an atom is not a numeral")
	}
	if _, ok := DecodeNumeral(termlang.MustParse("f:x:(f f x)")); ok {
		t.Errorf("f:x:(f f x) is not a numeral")
	}
	if _, ok := DecodeBool(Numeral(2)); ok {
		t.Errorf("2 is not a boolean")
	}
}

func TestApplyCopies(t *testing.T) {
	one := Numeral(1)
	x := Apply(Succ(), one)
	normalize(t, x)
	if !term.Equal(one, Numeral(1)) {
		t.Errorf("expected argument to Apply to stay untouched, is %v", one)
	}
}
