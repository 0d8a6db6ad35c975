package reduce

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lambdaman/term"
	"golang.org/x/exp/slices"
)

// ErrNotReducible is the error wrapped by all errors of ApplyAt. It signals that
// a path does not (or no longer) denote a redex.
var ErrNotReducible = errors.New("not a reducible position")

// Errors returned by ApplyAt
var (
	ErrNotAbstraction = fmt.Errorf("%w: no abstraction at path", ErrNotReducible)
	ErrNoArgument     = fmt.Errorf("%w: argument not found", ErrNotReducible)
)

// Redex is a position within a term where a beta-reduction may take place.
type Redex struct {
	Priority int       // number of abstractions enclosing the redex
	Path     term.Path // path to the abstraction being applied
}

func (r Redex) String() string {
	return fmt.Sprintf("%d@%v", r.Priority, r.Path)
}

// step is a node on the way from the root of a term to one of its nodes.
type step struct {
	node  term.Term
	index int // index of the child within an application, -1 for abstractions
}

// descend follows path p from the root of t. It returns the chain of ancestors
// of the node at p, the node itself and the number of abstractions enclosing it.
// Walking p uses the same conventions as term.At.
func descend(t term.Term, p term.Path) ([]step, term.Term, int, bool) {
	var trail []step
	depth := 0
	for _, i := range p {
		for {
			abs, ok := t.(*term.Abstraction)
			if !ok {
				break
			}
			trail = append(trail, step{node: abs, index: -1})
			t = abs.Body
			depth++
		}
		app, ok := t.(*term.Application)
		if !ok || i < 0 || i >= len(app.Terms) {
			return nil, nil, 0, false
		}
		trail = append(trail, step{node: app, index: i})
		t = app.Terms[i]
	}
	return trail, t, depth, true
}

// argument locates the argument an abstraction is applied to. trail is the chain
// of ancestors of the abstraction, depth the number of abstractions enclosing it.
// argument returns the position within trail of the application holding the
// argument, which always is the second term of the application.
//
// Walking up, the abstraction has to be the head of an application with at least
// two terms. Applications of a single term are transparent. Any other parent means
// that the abstraction is not applied to anything: either it is an argument
// itself, or it is the body of another abstraction.
//
// The argument must not reference binders beyond depth, otherwise moving it into
// the body of the abstraction would alter its meaning.
func argument(trail []step, depth int) (int, bool) {
	for i := len(trail) - 1; i >= 0; i-- {
		app, ok := trail[i].node.(*term.Application)
		if !ok || trail[i].index != 0 {
			return 0, false
		}
		if len(app.Terms) == 1 {
			continue
		}
		if !term.IsClosedUnder(app.Terms[1], depth) {
			tracer().Debugf("argument %v not closed under %d", app.Terms[1], depth)
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// pathOf returns the path to the node reached by trail.
func pathOf(trail []step) term.Path {
	p := term.Path{}
	for _, st := range trail {
		if st.index >= 0 {
			p = append(p, st.index)
		}
	}
	return p
}

// Find returns all the redexes of a term, in pre-order. The paths returned are
// suitable as input to ApplyAt.
//
// A redex is an abstraction which is the head of an application and for which
// an argument may be found. Clients should call Find on simplified terms
// (see term.Simplify), otherwise redexes hidden by nested single-term applications
// may be missed.
func Find(t term.Term) []Redex {
	var redexes []Redex
	node, seq := term.Traverse(t).Where(term.OfKind(term.AbstractionKind)).First()
	for ; !seq.Done(); node = seq.Next() {
		trail, addressed, depth, ok := descend(t, node.Path)
		if !ok || addressed != node.Term { // inner abstraction sharing a path
			continue
		}
		if _, ok := argument(trail, depth); ok {
			redexes = append(redexes, Redex{
				Priority: depth,
				Path:     node.Path.Clone(),
			})
		}
	}
	tracer().Debugf("found %d redexes: %v", len(redexes), redexes)
	return redexes
}

// ApplyAt performs a beta-reduction of the abstraction at path at, which has usually
// been reported by Find:
//
//   1. the abstraction is located at path at
//   2. its argument is located and removed from the application containing it
//   3. the argument is substituted for the variables bound by the abstraction
//   4. the abstraction is replaced by its body
//   5. the term is simplified
//
// The term is modified in place. ApplyAt returns the root of the term, which
// will differ from t if the root node itself has been replaced.
//
// If at does not denote a redex, ApplyAt returns an error wrapping
// ErrNotReducible, and t is left untouched.
func ApplyAt(t term.Term, at term.Path) (term.Term, error) {
	t, _, err := apply(t, at)
	return t, err
}

// apply implements ApplyAt. In addition it returns the path to the result of the
// reduction within the simplified term.
func apply(t term.Term, at term.Path) (term.Term, term.Path, error) {
	trail, node, depth, ok := descend(t, at)
	if !ok {
		tracer().Errorf("path %v does not address a node", at)
		return t, nil, fmt.Errorf("%w %v", ErrNotAbstraction, at)
	}
	abs, ok := node.(*term.Abstraction)
	if !ok {
		tracer().Errorf("node at %v is %v, not an abstraction", at, node.Kind())
		return t, nil, fmt.Errorf("%w %v", ErrNotAbstraction, at)
	}
	pos, ok := argument(trail, depth)
	if !ok {
		tracer().Errorf("cannot find argument for abstraction at %v", at)
		return t, nil, fmt.Errorf("%w for abstraction at %v", ErrNoArgument, at)
	}
	app := trail[pos].node.(*term.Application)
	arg := app.Terms[1]
	app.Terms = slices.Delete(app.Terms, 1, 2)
	tracer().Debugf("applying abstraction at %v to %v", at, arg)
	body := term.Substitute(abs.Body, 0, arg)
	t = replace(t, trail, body)
	// single-term applications between app and the body collapse, and so does
	// app if the argument was the last term besides the abstraction
	result := pathOf(trail[:pos])
	if len(app.Terms) > 1 {
		result = append(result, 0)
	}
	return term.Simplify(t), result, nil
}

// replace puts node in place of the last node of trail and returns the root.
func replace(root term.Term, trail []step, node term.Term) term.Term {
	if len(trail) == 0 {
		return node
	}
	switch parent := trail[len(trail)-1].node.(type) {
	case *term.Application:
		parent.Terms[trail[len(trail)-1].index] = node
	case *term.Abstraction:
		parent.Body = node
	}
	return root
}
