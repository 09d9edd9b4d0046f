package forest

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Sprint renders a forest as an indented text tree, one line per node.
// If label is nil, nodes are labelled with their id.
func (s Shape[N, K]) Sprint(f Forest[N], label func(N) string) string {
	s.mustNavigate()
	if label == nil {
		label = func(n N) string {
			return fmt.Sprint(s.ID(n))
		}
	}
	type item struct {
		node   N
		branch tp.Tree
	}
	printer := tp.New()
	stack := make([]item, 0, len(f))
	for i := len(f) - 1; i >= 0; i-- {
		stack = append(stack, item{f[i], printer})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := s.Children(it.node)
		if len(children) == 0 {
			it.branch.AddNode(label(it.node))
			continue
		}
		b := it.branch.AddBranch(label(it.node))
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{children[i], b})
		}
	}
	return printer.String()
}
