/*
Package linked implements an insertion-ordered set backed by a singly linked list.

A LinkedSet stores unique values of a comparable type. Values are appended at
the tail of the list, therefore iteration order is the order in which distinct
values have first been inserted. Re-inserting a value does not move it.

Construct with

	S := linked.Of("a", "b", "a")    // S = set[a,b]
	S.Insert("c")                    // returns 1
	S.Insert("a")                    // returns 0, already present
	S.Erase("b")                     // S = set[a,c]

Membership tests are linear scans and values need neither hashing nor an
ordering. Removal through a cursor is O(1).

# Cursors

Begin and End hand out cursors. A cursor captures the modification count of
its set at creation time. Every structural change of the set (an insert which
adds a value, an erase, a clear) increments this count, and the cursor will
refuse to advance or erase afterwards, returning an error wrapping
lset.ErrConcurrentModification. The only exception is erasing through the
cursor itself:

	for it := S.Begin(); !it.Done(); it.Next() {
	    if v, _ := it.Value(); strings.HasPrefix(v, "tmp") {
	        it.Erase()  // cursor rests on the successor; it.Next() re-arms it
	    }
	}

Sets and cursors are not safe for concurrent use by multiple goroutines.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package linked

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lset.linked'.
func tracer() tracing.Trace {
	return tracing.Select("lset.linked")
}
