package forest

import (
	"fmt"
	"slices"
	"strings"
)

// item is a node type for tests. Parent 0 marks a root.
type item struct {
	id     int
	parent int
	name   string
	kids   []*item
}

func (it *item) String() string {
	return fmt.Sprintf("⟨%d⟩", it.id)
}

func node(id int, kids ...*item) *item {
	return &item{id: id, kids: kids}
}

var shape = Shape[*item, int]{
	ID:       func(it *item) int { return it.id },
	Children: func(it *item) []*item { return it.kids },
	Parent: func(it *item) (int, bool) {
		return it.parent, it.parent != 0
	},
	Build: func(it *item, kids []*item) *item {
		c := *it
		c.kids = kids
		return &c
	},
}

// sample returns
//
//	1
//	├── 2
//	│   ├── 4
//	│   └── 5
//	└── 3
//	    ├── 6
//	    └── 7
func sample() Forest[*item] {
	return Forest[*item]{
		node(1,
			node(2, node(4), node(5)),
			node(3, node(6), node(7)),
		),
	}
}

func ids(nodes []*item) []int {
	r := make([]int, len(nodes))
	for i, n := range nodes {
		r[i] = n.id
	}
	return r
}

func sorted(ids []int) []int {
	r := slices.Clone(ids)
	slices.Sort(r)
	return r
}

// withParents returns the nodes of f in pre-order, as copies carrying
// parent references but no children.
func withParents(f Forest[*item]) []*item {
	var list []*item
	var walk func(kids []*item, parent int)
	walk = func(kids []*item, parent int) {
		for _, k := range kids {
			list = append(list, &item{id: k.id, parent: parent, name: k.name})
			walk(k.kids, k.id)
		}
	}
	walk(f, 0)
	return list
}

func dump(f Forest[*item]) string {
	return strings.TrimSpace(shape.Sprint(f, nil))
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func lastField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
