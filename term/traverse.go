package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/exp/slices"
)

// --- Trees -----------------------------------------------------------------

// A TreeNode represents a node of a term during a tree walk, together with its
// position.
type TreeNode struct {
	Term  Term
	Path  Path // path to this node
	Depth int  // number of enclosing abstractions
	Level int  // number of ancestors
}

// TreeSeq is a type which represents a tree walk as a sequence.
// Nodes are visited top-down, in depth-first pre-order and left to right.
type TreeSeq struct {
	node   TreeNode
	stack  []TreeNode // nodes yet to visit, next one on top
	filter NodeFilter
	done   bool
}

// Traverse creates a sequence from a term. The term must not be modified
// while the sequence is in use.
func Traverse(t Term) TreeSeq {
	if t == nil {
		return TreeSeq{done: true}
	}
	seq := TreeSeq{
		stack: []TreeNode{{Term: t, Path: Path{}}},
	}
	seq.advance()
	return seq
}

func (seq *TreeSeq) advance() {
	for len(seq.stack) > 0 {
		n := seq.stack[len(seq.stack)-1]
		seq.stack = pushChildren(seq.stack[:len(seq.stack)-1], n)
		if seq.filter == nil || seq.filter(n) {
			seq.node = n
			return
		}
	}
	seq.node = TreeNode{}
	seq.done = true
}

// children are pushed in reverse, so the leftmost one is visited first
func pushChildren(stack []TreeNode, n TreeNode) []TreeNode {
	switch x := n.Term.(type) {
	case *Application:
		for i := len(x.Terms) - 1; i >= 0; i-- {
			stack = append(stack, TreeNode{
				Term:  x.Terms[i],
				Path:  n.Path.Append(i),
				Depth: n.Depth,
				Level: n.Level + 1,
			})
		}
	case *Abstraction:
		stack = append(stack, TreeNode{
			Term:  x.Body,
			Path:  n.Path,
			Depth: n.Depth + 1,
			Level: n.Level + 1,
		})
	}
	return stack
}

// Break signals a sequence to stop iterating.
func (seq *TreeSeq) Break() {
	seq.done = true
	seq.stack = nil
}

// Done returns true if a sequence stopped iterating.
func (seq *TreeSeq) Done() bool {
	return seq.done
}

// First returns the first node of a tree traversal, together with the sequence.
func (seq TreeSeq) First() (TreeNode, TreeSeq) {
	return seq.node, seq
}

// Next returns the next node of a tree traversal. If the sequence is exhausted,
// Next returns a zero node and the sequence is done.
func (seq *TreeSeq) Next() TreeNode {
	if seq.done {
		return TreeNode{}
	}
	seq.advance()
	return seq.node
}

// List returns all the remaining nodes of a tree walk, including the current one.
func (seq TreeSeq) List() []TreeNode {
	var nodes []TreeNode
	seq.stack = slices.Clone(seq.stack)
	for node := seq.node; !seq.Done(); node = seq.Next() {
		nodes = append(nodes, node)
	}
	return nodes
}

// A NodeFilter filters nodes from a sequence of tree traversal nodes.
type NodeFilter func(node TreeNode) bool

// IsLeaf is a filter for tree nodes which only accepts bound variables and atoms.
func IsLeaf() NodeFilter {
	return func(node TreeNode) bool {
		k := node.Term.Kind()
		return k == BoundVarKind || k == AtomKind
	}
}

// OfKind is a filter for tree nodes which accepts nodes of kind k.
func OfKind(k Kind) NodeFilter {
	return func(node TreeNode) bool {
		return node.Term.Kind() == k
	}
}

// Where applies a filter to a sequence of tree nodes.
func (seq TreeSeq) Where(filt NodeFilter) TreeSeq {
	seq.stack = slices.Clone(seq.stack)
	seq.filter = filt
	if !seq.done && filt != nil && !filt(seq.node) {
		seq.advance()
	}
	return seq
}
