package reduce

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// Strategy selects the redex to reduce next from a list of redexes, as returned
// by Find. It returns false if the list is empty.
type Strategy func(redexes []Redex) (Redex, bool)

// ranked is a redex together with its position in discovery order.
type ranked struct {
	Redex
	order int
}

// byRank orders redexes by descending priority, then by descending path length,
// then by discovery order.
func byRank(a, b interface{}) int {
	x, y := a.(ranked), b.(ranked)
	if c := utils.IntComparator(y.Priority, x.Priority); c != 0 {
		return c
	}
	if c := utils.IntComparator(len(y.Path), len(x.Path)); c != 0 {
		return c
	}
	return utils.IntComparator(x.order, y.order)
}

// Rank returns the redexes ordered by preference of Best, most preferred first.
// The input slice is not modified.
func Rank(redexes []Redex) []Redex {
	heap := binaryheap.NewWith(byRank)
	for i, r := range redexes {
		heap.Push(ranked{Redex: r, order: i})
	}
	sorted := make([]Redex, 0, heap.Size())
	for !heap.Empty() {
		v, _ := heap.Pop()
		sorted = append(sorted, v.(ranked).Redex)
	}
	return sorted
}

// Best is the default strategy. It selects the redex with the highest priority,
// i.e. the one nested deepest within abstractions. Ties are broken by preferring
// longer paths, then earlier discovery.
func Best(redexes []Redex) (Redex, bool) {
	if len(redexes) == 0 {
		return Redex{}, false
	}
	heap := binaryheap.NewWith(byRank)
	for i, r := range redexes {
		heap.Push(ranked{Redex: r, order: i})
	}
	v, _ := heap.Peek()
	return v.(ranked).Redex, true
}

// Leftmost selects the first redex in discovery order, which is the leftmost
// outermost one. Reducing in this order finds the normal form of a term whenever
// one exists.
func Leftmost(redexes []Redex) (Redex, bool) {
	if len(redexes) == 0 {
		return Redex{}, false
	}
	return redexes[0], true
}

var _ Strategy = Best
var _ Strategy = Leftmost
