/*
Package church provides Church encodings of natural numbers, booleans and pairs,
together with the usual combinators operating on them.

Constructors return fresh terms on every call; clients are free to modify them,
e.g., by reduction. Numerals are built structurally, combinators are parsed from
their textual form:

	x := church.Apply(church.Add(), church.Numeral(2), church.Numeral(3))
	x, err := reduce.Normalize(x)
	n, ok := church.DecodeNumeral(x)  // n = 5

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package church

import (
	"github.com/npillmayer/lambdaman/term"
	"github.com/npillmayer/lambdaman/term/termlang"
	"github.com/samber/lo"
)

// Textual forms of the combinators.
const (
	TrueSource  = "t:f:t"
	FalseSource = "t:f:f"
	NotSource   = "b:t:f:(b f t)"
	AndSource   = "p:q:(p q p)"
	OrSource    = "p:q:(p p q)"
	SuccSource  = "n:f:x:(f (n f x))"
	AddSource   = "m:n:f:x:(m f (n f x))"
	MulSource   = "m:n:f:(m (n f))"
	PredSource  = "n:f:x:(n g:h:(h (g f)) u:x u:u)"
	SubSource   = "m:n:(n " + "(" + PredSource + ")" + " m)"
	ZeroSource  = "n:(n x:t:f:f t:f:t)"
	PairSource  = "x:y:p:(p x y)"
	FstSource   = "p:(p x:y:x)"
	SndSource   = "p:(p x:y:y)"
)

func combinator(src string) term.Term {
	return term.Simplify(termlang.MustParse(src))
}

// True returns the Church boolean true, selecting the first of two arguments.
func True() term.Term { return combinator(TrueSource) }

// False returns the Church boolean false, selecting the second of two arguments.
func False() term.Term { return combinator(FalseSource) }

// Not negates a Church boolean.
func Not() term.Term { return combinator(NotSource) }

// And is the conjunction of two Church booleans.
func And() term.Term { return combinator(AndSource) }

// Or is the disjunction of two Church booleans.
func Or() term.Term { return combinator(OrSource) }

// Succ returns the successor function for Church numerals.
func Succ() term.Term { return combinator(SuccSource) }

// Add returns the addition of two Church numerals.
func Add() term.Term { return combinator(AddSource) }

// Mul returns the multiplication of two Church numerals.
func Mul() term.Term { return combinator(MulSource) }

// Pred returns the predecessor function for Church numerals. The predecessor of 0 is 0.
func Pred() term.Term { return combinator(PredSource) }

// Sub returns the subtraction of two Church numerals, truncated at 0.
func Sub() term.Term { return combinator(SubSource) }

// IsZero tests a Church numeral for 0, resulting in a Church boolean.
func IsZero() term.Term { return combinator(ZeroSource) }

// Pair builds a pair from two terms.
func Pair() term.Term { return combinator(PairSource) }

// Fst selects the first element of a pair.
func Fst() term.Term { return combinator(FstSource) }

// Snd selects the second element of a pair.
func Snd() term.Term { return combinator(SndSource) }

// Numeral returns the Church numeral for n, i.e. a function applying its first
// argument n times to its second one. Numeral panics if n is negative.
func Numeral(n int) term.Term {
	if n < 0 {
		panic("church: negative numeral")
	}
	var body term.Term = term.Var(0)
	for i := 0; i < n; i++ {
		body = term.App(term.Var(1), body)
	}
	return term.Abs(term.Abs(body))
}

// Apply builds an application from copies of ts.
func Apply(ts ...term.Term) term.Term {
	return term.App(lo.Map(ts, func(t term.Term, _ int) term.Term {
		return term.Clone(t)
	})...)
}

// DecodeNumeral returns the number a Church numeral in normal form stands for.
// It returns false if t is not a numeral.
func DecodeNumeral(t term.Term) (int, bool) {
	body, ok := twoBinders(t)
	if !ok {
		return 0, false
	}
	n := 0
	for {
		switch x := body.(type) {
		case *term.BoundVar:
			return n, x.Index == 0
		case *term.Application:
			if len(x.Terms) != 2 || !isVar(x.Terms[0], 1) {
				return 0, false
			}
			body = x.Terms[1]
			n++
		default:
			return 0, false
		}
	}
}

// DecodeBool returns the value of a Church boolean in normal form. It returns
// false as its second result if t is not a boolean.
func DecodeBool(t term.Term) (bool, bool) {
	body, ok := twoBinders(t)
	if !ok {
		return false, false
	}
	switch {
	case isVar(body, 1):
		return true, true
	case isVar(body, 0):
		return false, true
	}
	return false, false
}

func twoBinders(t term.Term) (term.Term, bool) {
	t = term.Simplify(term.Clone(t))
	outer, ok := t.(*term.Abstraction)
	if !ok {
		return nil, false
	}
	inner, ok := outer.Body.(*term.Abstraction)
	if !ok {
		return nil, false
	}
	return inner.Body, true
}

func isVar(t term.Term, i int) bool {
	v, ok := t.(*term.BoundVar)
	return ok && v.Index == i
}
