/*
Package record applies the forest operations to trees of plain keyed records.

A Record is a map from field names to values, as produced by decoding JSON or
YAML. One field holds the id of a record and another one its children. Flat
lists use a third field for the id of the parent. The names of these fields
are configurable:

	roots, err := record.Decode(data)
	path := record.FindPathByID(roots, 5)
	checked := record.LeafToParent(roots, record.IDs(4, 5, 6), record.IDKey("uid"))

Defaults are "id", "children" and "pid". All other fields are carried
through untouched.

Ids are compared using Go's equality of the stored values. Decode turns
integral numbers into int, so 1 and 1.0 in a document denote the same id, but
a record literal holding id 1 will not match a query for 1.0.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package record

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treekit.record'.
func tracer() tracing.Trace {
	return tracing.Select("treekit.record")
}

// ErrNotAForest is returned by Decode for documents which are neither a
// sequence of records nor a single record.
var ErrNotAForest = errors.New("document is not a forest of records")
