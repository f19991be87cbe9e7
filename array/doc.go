/*
Package array implements a typed array list, built on top of the array list of
github.com/emirpasic/gods.

List adds type safety and fail-fast cursors to the gods list. Its cursors
implement lset.Iterator, just like the cursors of linked sets, and obey the same
rules: a structural modification of the list invalidates all cursors but the one
through which it has been done.

Function Seq adapts any gods container (lists, sets, trees, …) to a sequence, to
be used with the bulk operations of other containers of this module:

	tree := treeset.NewWithIntComparator(3, 1, 2)
	S := linked.From(array.Seq[int](tree))    // S = set[1,2,3]

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package array

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lset.array'.
func tracer() tracing.Trace {
	return tracing.Select("lset.array")
}
