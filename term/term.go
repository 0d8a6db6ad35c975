package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Term is the type of lambda terms. It is implemented by *Application,
// *Abstraction, *BoundVar and *Atom, and by no other type.
type Term interface {
	Kind() Kind
	String() string
	isTerm()
}

// Kind is a category type for the node types of terms.
type Kind int8

// Kinds of term nodes
const (
	NoKind Kind = iota
	ApplicationKind
	AbstractionKind
	BoundVarKind
	AtomKind
)

func (k Kind) String() string {
	switch k {
	case ApplicationKind:
		return "Application"
	case AbstractionKind:
		return "Abstraction"
	case BoundVarKind:
		return "BoundVar"
	case AtomKind:
		return "Atom"
	}
	return "NoKind"
}

// --- Node types ------------------------------------------------------------

// Application is a left-associative juxtaposition of terms.
type Application struct {
	Terms []Term
}

// Abstraction binds a new variable over its body.
type Abstraction struct {
	Body Term
}

// BoundVar is a de Bruijn index.
type BoundVar struct {
	Index int
}

// Atom is an opaque named constant. Atoms are equal if their names are equal.
type Atom struct {
	Name string
}

// App creates an application of terms.
func App(terms ...Term) *Application {
	return &Application{Terms: terms}
}

// Abs creates an abstraction over body.
func Abs(body Term) *Abstraction {
	return &Abstraction{Body: body}
}

// Var creates a bound variable with de Bruijn index i.
func Var(i int) *BoundVar {
	return &BoundVar{Index: i}
}

// Atomize creates an atom for a name.
func Atomize(name string) *Atom {
	return &Atom{Name: name}
}

func (a *Application) Kind() Kind { return ApplicationKind }
func (a *Abstraction) Kind() Kind { return AbstractionKind }
func (v *BoundVar) Kind() Kind    { return BoundVarKind }
func (a *Atom) Kind() Kind        { return AtomKind }

func (a *Application) isTerm() {}
func (a *Abstraction) isTerm() {}
func (v *BoundVar) isTerm()    {}
func (a *Atom) isTerm()        {}

func (a *Application) String() string { return display(a) }
func (a *Abstraction) String() string { return display(a) }
func (v *BoundVar) String() string    { return display(v) }
func (a *Atom) String() string        { return display(a) }

// Len returns the number of terms in an application.
func (a *Application) Len() int {
	return len(a.Terms)
}

// --- Structural operations -------------------------------------------------

// Clone creates a deep copy of a term. The copy shares no nodes with t.
func Clone(t Term) Term {
	switch x := t.(type) {
	case *Application:
		terms := make([]Term, len(x.Terms))
		for i, c := range x.Terms {
			terms[i] = Clone(c)
		}
		return &Application{Terms: terms}
	case *Abstraction:
		return &Abstraction{Body: Clone(x.Body)}
	case *BoundVar:
		return &BoundVar{Index: x.Index}
	case *Atom:
		return &Atom{Name: x.Name}
	}
	return nil
}

// Equal is a predicate: are a and b structurally identical?
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case *Application:
		y, ok := b.(*Application)
		if !ok || len(x.Terms) != len(y.Terms) {
			return false
		}
		for i := range x.Terms {
			if !Equal(x.Terms[i], y.Terms[i]) {
				return false
			}
		}
		return true
	case *Abstraction:
		y, ok := b.(*Abstraction)
		return ok && Equal(x.Body, y.Body)
	case *BoundVar:
		y, ok := b.(*BoundVar)
		return ok && x.Index == y.Index
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Name == y.Name
	}
	return a == nil && b == nil
}

// --- Paths -----------------------------------------------------------------

// Path addresses a node within a term. Every step is an index into an
// application; abstractions are passed through without consuming a step.
type Path []int

// Append returns a new path, extended by a child index. p is left untouched.
func (p Path) Append(i int) Path {
	q := make(Path, len(p), len(p)+1)
	copy(q, p)
	return append(q, i)
}

// Equals is a predicate: do p and q address the same node?
func (p Path) Equals(q Path) bool {
	return slices.Equal(p, q)
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return Path{}
	}
	return slices.Clone(p)
}

func (p Path) String() string {
	return fmt.Sprintf("%v", []int(p))
}

// At returns the node addressed by path p within t, together with the number
// of abstractions enclosing it. If p does not address a node of t, At returns
// false.
//
// After the last step of p no further abstractions are entered, i.e. the node
// returned is either t itself or a direct child of an application.
func At(t Term, p Path) (Term, int, bool) {
	depth := 0
	for _, i := range p {
		for {
			abs, ok := t.(*Abstraction)
			if !ok {
				break
			}
			t = abs.Body
			depth++
		}
		app, ok := t.(*Application)
		if !ok || i < 0 || i >= len(app.Terms) {
			return nil, 0, false
		}
		t = app.Terms[i]
	}
	return t, depth, t != nil
}
