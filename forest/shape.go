package forest

import (
	"iter"

	"github.com/npillmayer/treekit/maybe"
)

// Forest is an ordered sequence of root nodes. Order is significant: it
// decides which of several matching nodes a search finds first, and it is
// the order of all results.
type Forest[N any] []N

// Path is a sequence of nodes leading from a root to a target node,
// both inclusive.
type Path[N any] []N

// Last returns the target node of a path, or Nothing for an empty path.
func (p Path[N]) Last() maybe.Maybe[N] {
	if len(p) == 0 {
		return maybe.Nothing[N]()
	}
	return maybe.Just(p[len(p)-1])
}

// Shape tells the operations of this package how to look into a node of
// type N. Ids of type K must be unique within a forest.
//
// ID and Children are needed by every operation. Parent and Build are
// needed by Unflatten only. A Children accessor returning nil or an empty
// slice marks a leaf.
type Shape[N any, K comparable] struct {
	ID       func(N) K         // id of a node
	Children func(N) []N       // children of a node, in order
	Parent   func(N) (K, bool) // reference to the parent; false for roots
	Build    func(N, []N) N    // a fresh node with the given children
}

func (s Shape[N, K]) mustNavigate() {
	assertThat(s.ID != nil && s.Children != nil, "shape needs ID and Children accessors")
}

func (s Shape[N, K]) mustConvert() {
	s.mustNavigate()
	assertThat(s.Parent != nil && s.Build != nil, "shape needs Parent and Build accessors for conversion")
}

// IsLeaf is true for nodes without children.
func (s Shape[N, K]) IsLeaf(n N) bool {
	return len(s.Children(n)) == 0
}

// All iterates over all nodes of a forest in pre-order: a node is followed
// by its subtree, left to right, before its right siblings are visited.
func (s Shape[N, K]) All(f Forest[N]) iter.Seq[N] {
	s.mustNavigate()
	return func(yield func(N) bool) {
		stack := pushReversed(nil, f)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			stack = pushReversed(stack, s.Children(n))
		}
	}
}

// pushReversed pushes nodes onto a stack such that nodes[0] is on top.
func pushReversed[N any](stack []N, nodes []N) []N {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}
	return stack
}
