package lset

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/gconf"
)

// Error kinds reported by cursors. Errors returned by functions of this module
// wrap one of these; test for them with errors.Is.
var (
	// ErrConcurrentModification is reported if a cursor is advanced or used to
	// erase after its container has been structurally modified by somebody else.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrDistinctContainers is reported when comparing cursors which iterate
	// over different container instances.
	ErrDistinctContainers = errors.New("comparing cursors of distinct containers")

	// ErrIteratorType is reported when comparing cursors of different container
	// families, e.g., a linked set cursor with an array list cursor.
	ErrIteratorType = errors.New("comparing cursors of different kind")

	// ErrInvalidPosition is reported when dereferencing (or erasing at) a cursor
	// position which does not hold a value, i.e., the past-the-end position or the
	// position of a value which has just been erased through the cursor.
	ErrInvalidPosition = errors.New("cursor at invalid position")

	// ErrCannotErase is reported for a second erase at the same cursor position.
	ErrCannotErase = errors.New("cursor cannot erase twice at the same position")
)

// PanicOnConcurrentModification is the name of a configuration flag. If it is
// set to true, detection of a concurrent modification will panic instead of
// returning an error.
const PanicOnConcurrentModification = "panic-on-concurrent-modification"

// ConcurrentModification creates an error of kind ErrConcurrentModification for a cursor
// operation op, which expected the container at modification count expected but
// found it at actual.
func ConcurrentModification(op string, expected, actual int) error {
	err := errors.Wrapf(ErrConcurrentModification, "%s: expected mod_count=%d, container is at %d",
		op, expected, actual)
	tracer().Debugf("fail-fast: %v", err)
	if gconf.GetBool(PanicOnConcurrentModification) {
		panic(`Cursor detected a concurrent modification.

Configuration flag panic-on-concurrent-modification is set to true. It is aimed at
helping to debug client code and do a post-mortem of where the container got
modified. If you did not expect this to panic, please unset the flag to its
default (false).

` + err.Error())
	}
	return err
}

// InvalidPosition creates an error of kind ErrInvalidPosition for a cursor
// operation op.
func InvalidPosition(op string) error {
	return errors.Wrapf(ErrInvalidPosition, "%s", op)
}
