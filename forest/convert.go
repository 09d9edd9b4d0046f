package forest

// Flatten lists every node of a forest exactly once, in pre-order. Nodes
// are returned as they are, including their children.
func (s Shape[N, K]) Flatten(f Forest[N]) []N {
	flat := make([]N, 0, len(f))
	for n := range s.All(f) {
		flat = append(flat, n)
	}
	return flat
}

// Unflatten rebuilds a forest from a list of nodes carrying parent
// references. Every node of the list is re-created with Build, receiving
// its children in list order; nodes of the input list are left untouched.
//
// A node without a parent reference becomes a root. So does a node whose
// parent is not part of the list: partial lists are accepted without
// complaint. If an id occurs more than once, the last node with that id
// wins, at the position of the first one. Nodes which are only connected to
// each other through a cycle of parent references cannot be reached from any
// root and are dropped.
func (s Shape[N, K]) Unflatten(list []N) Forest[N] {
	s.mustConvert()
	at := make(map[K]int, len(list)) // id → index into list
	order := make([]K, 0, len(list))
	for i, n := range list {
		id := s.ID(n)
		if _, seen := at[id]; !seen {
			order = append(order, id)
		}
		at[id] = i
	}
	children := make(map[K][]K)
	roots := make([]K, 0)
	for _, id := range order {
		pid, ok := s.Parent(list[at[id]])
		if ok {
			if _, found := at[pid]; found {
				children[pid] = append(children[pid], id)
				continue
			}
			tracer().Debugf("unflatten: parent %v of node %v not in list, node becomes a root", pid, id)
		}
		roots = append(roots, id)
	}
	// build bottom-up, as Build wants the finished children of a node
	type frame struct {
		id       K
		expanded bool
	}
	built := make(map[K]N, len(order))
	f := make(Forest[N], 0, len(roots))
	for _, root := range roots {
		stack := []frame{{id: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if !top.expanded {
				top.expanded = true
				ch := children[top.id]
				for i := len(ch) - 1; i >= 0; i-- {
					stack = append(stack, frame{id: ch[i]})
				}
				continue
			}
			id := top.id
			stack = stack[:len(stack)-1]
			nodes := make([]N, len(children[id]))
			for i, cid := range children[id] {
				nodes[i] = built[cid]
			}
			built[id] = s.Build(list[at[id]], nodes)
		}
		f = append(f, built[root])
	}
	if len(built) < len(order) {
		tracer().Infof("unflatten: %d nodes unreachable from any root", len(order)-len(built))
	}
	return f
}
