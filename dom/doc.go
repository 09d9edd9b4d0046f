/*
Package dom lets the forest operations work on HTML documents.

HTML element nodes (package golang.org/x/net/html) form the trees; text,
comment and other non-element nodes are not part of them. Nodes are
identified by themselves, i.e. by their pointers. Selections are most
conveniently made with CSS selectors:

	roots, _ := dom.Parse(strings.NewReader(page))
	checked, _ := dom.Select(roots, "li.checked")
	covering := dom.Shape().LeafToParent(roots, checked)

This is the usual way of dealing with nested check-box lists: checking all
items of a sub-list is equivalent to checking the sub-list as a whole.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treekit.dom'.
func tracer() tracing.Trace {
	return tracing.Select("treekit.dom")
}
