/*
Package term implements terms of the untyped lambda calculus, using de Bruijn
indices instead of variable names.

A term is one of four kinds of nodes:

■ Application: an ordered, non-empty sequence of terms, applied left to right.
`(f x y)` applies f to x, and the result to y.

■ Abstraction: a lambda with exactly one body. It introduces a new binder,
which is referenced from within the body by index 0.

■ BoundVar: a de Bruijn index, i.e. the number of abstractions between the
variable and its binder, counted innermost to outermost starting at 0.

■ Atom: an opaque named constant. Atoms are never reduced.

Terms form a tree and are modified in place: Shift, Substitute and Simplify
work on the nodes of a term directly. Whenever a sub-term has to appear in more
than one place, Clone creates an independent copy.

Paths

Positions within a term are addressed by a Path, a sequence of child indices into
applications. Descending into the body of an abstraction does not consume a
path step. Thus, for

	(a:b:(a b) 'x)

path [0] denotes the abstraction `a:b:(a b)` and path [1] denotes the atom.

Printing

Format renders a term in the textual syntax of package termlang, naming binders
by nesting depth: the outermost binder is `a`, the next one is `b`, and so on.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lambdaman.term'.
func tracer() tracing.Trace {
	return tracing.Select("lambdaman.term")
}
