package forest

// idSet is an insertion-ordered set of ids. Removing and re-adding an id
// moves it to the end.
type idSet[K comparable] struct {
	pos   map[K]int // position in items of every live id
	items []K
	gone  []bool
}

func newIDSet[K comparable](ids []K) *idSet[K] {
	s := &idSet[K]{
		pos:   make(map[K]int, len(ids)),
		items: make([]K, 0, len(ids)),
		gone:  make([]bool, 0, len(ids)),
	}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// add inserts id and reports whether it was not present before.
func (s *idSet[K]) add(id K) bool {
	if _, ok := s.pos[id]; ok {
		return false
	}
	s.pos[id] = len(s.items)
	s.items = append(s.items, id)
	s.gone = append(s.gone, false)
	return true
}

func (s *idSet[K]) remove(id K) {
	if i, ok := s.pos[id]; ok {
		s.gone[i] = true
		delete(s.pos, id)
	}
}

func (s *idSet[K]) len() int {
	return len(s.pos)
}

// values returns the live ids in insertion order.
func (s *idSet[K]) values() []K {
	out := make([]K, 0, len(s.pos))
	for i, id := range s.items {
		if !s.gone[i] {
			out = append(out, id)
		}
	}
	return out
}
