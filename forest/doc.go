/*
Package forest implements operations on forests of generically keyed nodes.

A forest is an ordered slice of root nodes. Nodes may be of any type; clients
describe how to look into a node by handing over a Shape, a small set of
accessor functions for the id of a node and its children. Conversions from
flat lists additionally need the parent reference of a node and a way to
build a fresh node.

	shape := forest.Shape[*Item, int]{
	    ID:       func(it *Item) int { return it.Key },
	    Children: func(it *Item) []*Item { return it.Sub },
	}
	path := shape.FindPath(items, 5)          // root … node 5
	ids := shape.LeafToParent(items, checked) // minimal covering ids

Operations

Locating:

   All(f)                  // pre-order iterator over every node
   FindNode(f, id)         // first node with a given id
   FindPath(f, id)         // root-to-node path
   Leaves(f)               // all nodes without children

Selections:

   LeafToParent(f, ids)    // fold fully selected children into their parent
   ParentToLeaf(f, ids)    // expand selected ids into the leaf ids below them

Conversion:

   Flatten(f)              // pre-order list of all nodes
   Unflatten(list)         // rebuild a forest from parent references

All operations are synchronous and allocate call-local state only. Input
nodes are never modified, so concurrent readers of a forest are safe.
Clients are responsible for handing in well-formed forests: ids are unique
and no node is reachable from two parents. This is not checked.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treekit.forest'.
func tracer() tracing.Trace {
	return tracing.Select("treekit.forest")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treekit.forest: "+msg, msgargs...)
		panic(msg)
	}
}
