package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Shift adds amount to every bound variable of t with an index ≥ cutoff.
// Variables with a smaller index refer to binders within t and are left
// untouched. The cutoff grows by one for every abstraction entered.
//
// Shift is used whenever a term is moved to a place with a different number of
// enclosing abstractions. t is modified in place.
func Shift(t Term, cutoff int, amount int) {
	switch x := t.(type) {
	case *Application:
		for _, c := range x.Terms {
			Shift(c, cutoff, amount)
		}
	case *Abstraction:
		Shift(x.Body, cutoff+1, amount)
	case *BoundVar:
		if x.Index >= cutoff {
			x.Index += amount
		}
	}
}

// IsClosedUnder is a predicate: is every bound variable of t referring to a binder
// less than cutoff levels out? Atoms are always closed.
//
// A term which is closed under n may be moved beneath or out of binders beyond
// level n without changing its meaning.
func IsClosedUnder(t Term, cutoff int) bool {
	switch x := t.(type) {
	case *Application:
		for _, c := range x.Terms {
			if !IsClosedUnder(c, cutoff) {
				return false
			}
		}
		return true
	case *Abstraction:
		return IsClosedUnder(x.Body, cutoff+1)
	case *BoundVar:
		return x.Index < cutoff
	}
	return true
}

// Simplify collapses every application consisting of exactly one term into
// that term. It does not otherwise re-arrange nodes. Simplify modifies t in place
// and returns the new root, which differs from t if t itself has been collapsed.
//
// Simplify is idempotent.
func Simplify(t Term) Term {
	switch x := t.(type) {
	case *Application:
		for i, c := range x.Terms {
			x.Terms[i] = Simplify(c)
		}
		if len(x.Terms) == 1 {
			return x.Terms[0]
		}
	case *Abstraction:
		x.Body = Simplify(x.Body)
	}
	return t
}

// Substitute replaces variables of t, which is the body of an abstraction whose
// binder is consumed by a beta-reduction:
//
//   - a variable referring to the consumed binder (i.e., with an index equal to depth)
//     is replaced by a fresh copy of value, shifted by depth
//   - a variable referring to a binder outside the consumed one is decremented
//   - a variable referring to a binder within t is left alone
//
// Callers start with depth 0. Substitute modifies t in place and returns the new
// root, which differs from t if t itself is replaced.
func Substitute(t Term, depth int, value Term) Term {
	switch x := t.(type) {
	case *Application:
		for i, c := range x.Terms {
			x.Terms[i] = Substitute(c, depth, value)
		}
	case *Abstraction:
		x.Body = Substitute(x.Body, depth+1, value)
	case *BoundVar:
		if x.Index == depth {
			v := Clone(value)
			Shift(v, 0, depth)
			return v
		} else if x.Index > depth {
			x.Index--
		}
	}
	return t
}
