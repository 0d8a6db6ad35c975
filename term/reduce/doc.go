/*
Package reduce implements beta-reduction for terms of package term.

Reduction is split into two operations. Find scans a term for redexes, i.e.
abstractions which are applied to an argument, and returns their paths.
ApplyAt performs a single beta-reduction at a path, modifying the term in
place. A driving loop alternates between the two until no redex is left:

	t = term.Simplify(t)
	for redexes := reduce.Find(t); len(redexes) > 0; redexes = reduce.Find(t) {
		r, _ := reduce.Best(redexes)
		if t, err = reduce.ApplyAt(t, r.Path); err != nil {
			…
		}
	}

Normalizer implements this loop, with an optional limit on the number of steps.
Reduction of a term without a normal form will not terminate otherwise.

Every redex carries a priority, the number of abstractions enclosing it.
Best prefers redexes with higher priority, thus reducing inside of function
bodies first. This avoids duplicating unreduced work when an argument is
substituted for more than one occurrence of a variable. Leftmost implements
normal order instead, which finds a normal form whenever there is one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reduce

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lambdaman.reduce'.
func tracer() tracing.Trace {
	return tracing.Select("lambdaman.reduce")
}
