package forest

import (
	"slices"

	"github.com/npillmayer/treekit/maybe"
)

// FindNode searches a forest for the first node with a given id, in
// pre-order. If no such node exists, FindNode returns Nothing.
func (s Shape[N, K]) FindNode(f Forest[N], id K) maybe.Maybe[N] {
	for n := range s.All(f) {
		if s.ID(n) == id {
			return maybe.Just(n)
		}
	}
	return maybe.Nothing[N]()
}

// FindPath searches a forest for the first node with a given id, in the same
// order as FindNode, and returns the path from its root down to the node.
// If no such node exists, FindPath returns an empty path.
func (s Shape[N, K]) FindPath(f Forest[N], id K) Path[N] {
	s.mustNavigate()
	type pending struct {
		node N
		path Path[N] // root … node
	}
	stack := make([]pending, 0, len(f))
	for i := len(f) - 1; i >= 0; i-- {
		stack = append(stack, pending{node: f[i], path: Path[N]{f[i]}})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.ID(top.node) == id {
			return top.path
		}
		children := s.Children(top.node)
		for i := len(children) - 1; i >= 0; i-- {
			// clipping forces a copy, siblings must not share a backing array
			p := append(slices.Clip(top.path), children[i])
			stack = append(stack, pending{node: children[i], path: p})
		}
	}
	return Path[N]{}
}

// Leaves returns all nodes of a forest which have no children, from left
// to right.
func (s Shape[N, K]) Leaves(f Forest[N]) []N {
	var leaves []N
	for n := range s.All(f) {
		if s.IsLeaf(n) {
			leaves = append(leaves, n)
		}
	}
	return leaves
}
