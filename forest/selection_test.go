package forest

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeafToParentAllLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	defer teardown()
	//
	result := shape.LeafToParent(sample(), []int{4, 5, 6, 7})
	if !slices.Equal(result, []int{1}) {
		t.Errorf("expected all leaves to fold into [1], are %v", result)
	}
}

func TestLeafToParentPartial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	defer teardown()
	//
	result := shape.LeafToParent(sample(), []int{4, 5, 6})
	if !slices.Equal(result, []int{6, 2}) {
		t.Errorf("expected [4 5 6] to fold into [6 2], is %v", result)
	}
}

func TestLeafToParentTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tests := []struct {
		name     string
		selected []int
		want     []int
	}{
		{"empty", []int{}, []int{}},
		{"single leaf", []int{4}, []int{4}},
		{"unknown id passes", []int{4, 5, 99}, []int{99, 2}},
		{"siblings of both parents", []int{2, 3}, []int{1}},
		{"mixed levels", []int{2, 6, 7}, []int{1}},
		{"parent with its children", []int{2, 4, 5}, []int{2}},
		{"duplicates", []int{4, 4, 5}, []int{2}},
		{"root only", []int{1}, []int{1}},
	}
	for _, tt := range tests {
		result := shape.LeafToParent(sample(), tt.selected)
		if !slices.Equal(result, tt.want) {
			t.Errorf("%s: expected %v to fold into %v, is %v", tt.name, tt.selected, tt.want, result)
		}
	}
}

func TestLeafToParentChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	defer teardown()
	//
	f := Forest[*item]{node(1, node(2, node(3, node(4)))), node(5, node(6))}
	result := shape.LeafToParent(f, []int{4})
	if !slices.Equal(result, []int{1}) {
		t.Errorf("expected single-child chain to fold into [1], is %v", result)
	}
	result = shape.LeafToParent(f, []int{6, 4})
	if !slices.Equal(sorted(result), []int{1, 5}) {
		t.Errorf("expected both roots, is %v", result)
	}
}

func TestLeafToParentIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	f := sample()
	for _, sel := range [][]int{{4}, {4, 5}, {4, 5, 6}, {4, 5, 6, 7}, {2, 7}, {5, 6}} {
		once := shape.LeafToParent(f, sel)
		twice := shape.LeafToParent(f, once)
		if !slices.Equal(sorted(once), sorted(twice)) {
			t.Errorf("expected folding %v to be idempotent, got %v then %v", sel, once, twice)
		}
	}
}

func TestLeafToParentNoAncestorWithDescendant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	f := sample()
	leaves := []int{4, 5, 6, 7}
	// every subset of leaves
	for mask := 0; mask < 1<<len(leaves); mask++ {
		var sel []int
		for i, l := range leaves {
			if mask&(1<<i) != 0 {
				sel = append(sel, l)
			}
		}
		result := shape.LeafToParent(f, sel)
		for _, a := range result {
			for _, b := range result {
				if a == b {
					continue
				}
				path := shape.FindPath(f, b)
				if slices.Contains(ids(path), a) {
					t.Errorf("selection %v: result %v holds %d and its descendant %d", sel, result, a, b)
				}
			}
		}
		expanded := shape.ParentToLeaf(f, result)
		if !slices.Equal(sorted(expanded), sorted(sel)) {
			t.Errorf("selection %v: expected expansion of %v to restore it, is %v", sel, result, expanded)
		}
	}
}

func TestParentToLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	defer teardown()
	//
	result := shape.ParentToLeaf(sample(), []int{1})
	if !slices.Equal(result, []int{4, 5, 6, 7}) {
		t.Errorf("expected [1] to expand to [4 5 6 7], is %v", result)
	}
}

func TestParentToLeafTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	defer teardown()
	//
	tests := []struct {
		name     string
		selected []int
		opts     []ExpandOption
		want     []int
	}{
		{"empty", nil, nil, []int{}},
		{"empty, all leaves", nil, []ExpandOption{AllLeavesIfEmpty(true)}, []int{4, 5, 6, 7}},
		{"empty, all leaves off", []int{}, []ExpandOption{AllLeavesIfEmpty(false)}, []int{}},
		{"unknown, all leaves", []int{99}, []ExpandOption{AllLeavesIfEmpty(true)}, []int{}},
		{"leaf selects itself", []int{5}, nil, []int{5}},
		{"parent and leaf", []int{2, 7}, nil, []int{4, 5, 7}},
		{"ancestor and descendant", []int{1, 2, 4}, nil, []int{4, 5, 6, 7}},
		{"inner node", []int{3}, nil, []int{6, 7}},
	}
	for _, tt := range tests {
		result := shape.ParentToLeaf(sample(), tt.selected, tt.opts...)
		if !slices.Equal(result, tt.want) {
			t.Errorf("%s: expected %v to expand to %v, is %v", tt.name, tt.selected, tt.want, result)
		}
	}
}

func TestParentToLeafSeveralRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treekit.forest")
	defer teardown()
	//
	f := Forest[*item]{node(1, node(2), node(3)), node(4), node(5, node(6, node(7)))}
	result := shape.ParentToLeaf(f, []int{5, 1, 4})
	if !slices.Equal(result, []int{2, 3, 4, 7}) {
		t.Errorf("expected leaves in forest order [2 3 4 7], are %v", result)
	}
	all := shape.ParentToLeaf(f, nil, AllLeavesIfEmpty(true))
	if !slices.Equal(all, ids(shape.Leaves(f))) {
		t.Errorf("expected all leaves %v, are %v", ids(shape.Leaves(f)), all)
	}
}
