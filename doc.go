/*
Package lset is a small toolbox of insertion-ordered collections.

The centerpiece is a set type backed by a singly linked list: it stores unique
values, remembers the order in which distinct values were first inserted, and
hands out fail-fast cursors for traversal and in-place removal. Membership
tests are linear; in exchange removal through a cursor is O(1) and iteration
order is strictly the order of first insertion. Package structure is
as follows:

■ linked: Package linked implements LinkedSet, the linked-list backed set,
together with its cursor type and the set algebra built on top of it.

■ array: Package array implements a typed array list on top of gods, mainly to
have a second container family sharing the Iterator interface.

■ cmd/setrepl: An interactive command line tool for experimenting with sets.

The base package contains the cursor interface and the error kinds which are
used throughout all the other packages.

# Errors

All errors reported by cursors are usage errors of client code. Check for them
with errors.Is:

	if err := cursor.Next(); errors.Is(err, lset.ErrConcurrentModification) {
	    …  // the set changed behind the cursor's back
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lset'.
func tracer() tracing.Trace {
	return tracing.Select("lset")
}
