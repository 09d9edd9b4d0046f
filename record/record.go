package record

import (
	"maps"

	"github.com/npillmayer/treekit/forest"
	"github.com/npillmayer/treekit/maybe"
)

// Record is a node of a tree of plain keyed records.
type Record map[string]any

// Options configures the field names used to interpret records, and the
// behaviour of ParentToLeaf.
type Options struct {
	IDKey       string // field holding the id of a record
	ChildrenKey string // field holding the children of a record
	ParentKey   string // field holding the id of the parent, used by Unflatten
	AllLeaves   bool   // ParentToLeaf returns all leaves for an empty selection
}

// Option is a type to help setting up Options.
type Option func(Options) Options

// IDKey sets the name of the id field (default "id").
func IDKey(key string) Option {
	return func(o Options) Options {
		o.IDKey = key
		return o
	}
}

// ChildrenKey sets the name of the children field (default "children").
func ChildrenKey(key string) Option {
	return func(o Options) Options {
		o.ChildrenKey = key
		return o
	}
}

// ParentKey sets the name of the parent reference field (default "pid").
func ParentKey(key string) Option {
	return func(o Options) Options {
		o.ParentKey = key
		return o
	}
}

// AllLeaves makes ParentToLeaf return the ids of all leaves if no id is selected.
func AllLeaves() Option {
	return func(o Options) Options {
		o.AllLeaves = true
		return o
	}
}

func options(opts []Option) Options {
	o := Options{IDKey: "id", ChildrenKey: "children", ParentKey: "pid"}
	for _, option := range opts {
		o = option(o)
	}
	return o
}

// IDs is a convenience function to create a selection of ids:
//
//	record.LeafToParent(roots, record.IDs(4, 5, 6))
func IDs[T any](ids ...T) []any {
	r := make([]any, len(ids))
	for i, id := range ids {
		r[i] = id
	}
	return r
}

// Shape returns the accessors for records with the configured field names.
// Id values have to be comparable; records with slices or maps as ids
// will make the operations panic.
func Shape(opts ...Option) forest.Shape[Record, any] {
	o := options(opts)
	return forest.Shape[Record, any]{
		ID: func(r Record) any {
			return r[o.IDKey]
		},
		Children: func(r Record) []Record {
			return children(r[o.ChildrenKey])
		},
		Parent: func(r Record) (any, bool) {
			pid, ok := r[o.ParentKey]
			return pid, ok && pid != nil
		},
		Build: func(r Record, ch []Record) Record {
			c := make(Record, len(r)+1)
			maps.Copy(c, r)
			c[o.ChildrenKey] = ch
			return c
		},
	}
}

// children interprets the value of a children field. Anything which is not
// a slice of records counts as "no children"; non-record elements are skipped.
func children(v any) []Record {
	switch ch := v.(type) {
	case []Record:
		return ch
	case []map[string]any:
		r := make([]Record, len(ch))
		for i, m := range ch {
			r[i] = m
		}
		return r
	case []any:
		r := make([]Record, 0, len(ch))
		for _, el := range ch {
			switch m := el.(type) {
			case Record:
				r = append(r, m)
			case map[string]any:
				r = append(r, m)
			}
		}
		return r
	}
	return nil
}

// --- Operations ------------------------------------------------------------

// FindNodeByID returns the first record with a given id, searching depth
// first, or Nothing if there is none.
func FindNodeByID(roots []Record, id any, opts ...Option) maybe.Maybe[Record] {
	return Shape(opts...).FindNode(roots, id)
}

// FindPathByID returns the records leading from a root to the first record
// with a given id. It returns an empty path if there is no such record.
func FindPathByID(roots []Record, id any, opts ...Option) []Record {
	return Shape(opts...).FindPath(roots, id)
}

// Leaves returns all records without children, from left to right.
func Leaves(roots []Record, opts ...Option) []Record {
	return Shape(opts...).Leaves(roots)
}

// LeafToParent replaces selected ids by the id of their parent wherever all
// children of a parent are selected, repeatedly. See forest.Shape.LeafToParent.
func LeafToParent(roots []Record, leafIDs []any, opts ...Option) []any {
	return Shape(opts...).LeafToParent(roots, leafIDs)
}

// ParentToLeaf expands selected ids to the ids of the leaves below them. With
// option AllLeaves, an empty selection expands to all leaves.
// See forest.Shape.ParentToLeaf.
func ParentToLeaf(roots []Record, parentIDs []any, opts ...Option) []any {
	o := options(opts)
	return Shape(opts...).ParentToLeaf(roots, parentIDs, forest.AllLeavesIfEmpty(o.AllLeaves))
}

// Flatten lists all records of a tree in pre-order. Records keep their
// children field.
func Flatten(roots []Record, opts ...Option) []Record {
	return Shape(opts...).Flatten(roots)
}

// Unflatten builds a tree from a flat list of records linked by their
// parent field. The result consists of shallow copies of the input records,
// each with a children field holding a (possibly empty) []Record. Records
// whose parent is missing from the list become roots.
func Unflatten(list []Record, opts ...Option) []Record {
	return Shape(opts...).Unflatten(list)
}

// Sprint renders a tree of records, labelling every record with its id.
func Sprint(roots []Record, opts ...Option) string {
	return Shape(opts...).Sprint(roots, nil)
}
