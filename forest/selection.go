package forest

// LeafToParent folds a selection of ids upwards: whenever every child of a
// node is covered by the selection, the node's id replaces the ids of its
// children. Folding repeats until no more parents are fully covered, so the
// result is the minimal set of ids covering the same leaves, and never
// contains a node together with one of its descendants.
//
// Ids are returned in the order they entered the selection; folded parents
// are appended after the initial ids. Ids not present in the forest are
// passed through unchanged. Nodes without children never fold.
func (s Shape[N, K]) LeafToParent(f Forest[N], selected []K) []K {
	s.mustNavigate()
	parentOf := make(map[K]N)    // child id → parent node
	uncovered := make(map[K]int) // parent id → number of children not yet covered
	for n := range s.All(f) {
		children := s.Children(n)
		if len(children) == 0 {
			continue
		}
		for _, ch := range children {
			parentOf[s.ID(ch)] = n
		}
		uncovered[s.ID(n)] = len(children)
	}
	selection := newIDSet(selected)
	var covered []N // FIFO of parents whose children are all covered
	release := func(id K) {
		parent, ok := parentOf[id]
		if !ok {
			return
		}
		pid := s.ID(parent)
		uncovered[pid]--
		if uncovered[pid] == 0 {
			covered = append(covered, parent)
		}
	}
	for _, id := range selection.values() {
		release(id)
	}
	for len(covered) > 0 {
		parent := covered[0]
		covered = covered[1:]
		pid := s.ID(parent)
		// a parent selected from the start has already been counted by its own parent
		fresh := selection.add(pid)
		for _, ch := range s.Children(parent) {
			selection.remove(s.ID(ch))
		}
		tracer().Debugf("leaf-to-parent: node %v covers all of its %d children", pid, len(s.Children(parent)))
		if fresh {
			release(pid)
		}
	}
	tracer().Debugf("leaf-to-parent: %d ids selected, %d after folding", len(selected), selection.len())
	return selection.values()
}

// ExpandOption configures ParentToLeaf.
type ExpandOption func(*expandConfig)

type expandConfig struct {
	allLeaves bool
}

// AllLeavesIfEmpty makes ParentToLeaf return the ids of all leaves of the
// forest when the selection is empty. Without it, an empty selection
// expands to no leaves at all.
func AllLeavesIfEmpty(yes bool) ExpandOption {
	return func(conf *expandConfig) {
		conf.allLeaves = yes
	}
}

// ParentToLeaf expands a selection of ids downwards, returning the ids of
// all leaves below any selected node. A selected leaf contributes itself.
// Selected nodes may appear at any depth, also below unselected ancestors;
// leaves below several selected nodes are reported once, for the uppermost.
// Ids not present in the forest contribute nothing.
//
// Leaf ids are returned in pre-order of the forest.
func (s Shape[N, K]) ParentToLeaf(f Forest[N], selected []K, opts ...ExpandOption) []K {
	s.mustNavigate()
	var conf expandConfig
	for _, opt := range opts {
		opt(&conf)
	}
	leafIDs := make([]K, 0)
	if len(selected) == 0 {
		if conf.allLeaves {
			for _, leaf := range s.Leaves(f) {
				leafIDs = append(leafIDs, s.ID(leaf))
			}
		}
		return leafIDs
	}
	wanted := make(map[K]struct{}, len(selected))
	for _, id := range selected {
		wanted[id] = struct{}{}
	}
	stack := pushReversed(nil, f)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := wanted[s.ID(n)]; ok {
			for leaf := range s.All(Forest[N]{n}) {
				if s.IsLeaf(leaf) {
					leafIDs = append(leafIDs, s.ID(leaf))
				}
			}
			continue
		}
		stack = pushReversed(stack, s.Children(n))
	}
	return leafIDs
}
