package array

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lset"
)

// pastEnd is the index of a cursor at the past-the-end position.
const pastEnd = -1

// Cursor is a fail-fast position token over a List. It follows the same
// rules as the cursors of linked sets: after Erase the cursor rests on the
// successor of the erased value, and the next call to Next re-arms it without
// moving.
type Cursor[T any] struct {
	list     *List[T]
	index    int
	expected int
	erased   bool
}

var _ lset.Iterator[int] = (*Cursor[int])(nil)

// Begin returns a cursor positioned at the first value of l, or at the
// past-the-end position if l is empty.
func (l *List[T]) Begin() *Cursor[T] {
	c := &Cursor[T]{list: l, index: 0, expected: l.modCount}
	c.normalize()
	return c
}

// End returns a cursor at the past-the-end position of l.
func (l *List[T]) End() *Cursor[T] {
	return &Cursor[T]{list: l, index: pastEnd, expected: l.modCount}
}

func (c *Cursor[T]) normalize() {
	if c.index >= c.list.Size() {
		c.index = pastEnd
	}
}

func (c *Cursor[T]) check(op string) error {
	if c.expected != c.list.modCount {
		return lset.ConcurrentModification("array.Cursor."+op, c.expected, c.list.modCount)
	}
	return nil
}

// Done is true if c is at the past-the-end position.
func (c *Cursor[T]) Done() bool {
	return c.index == pastEnd
}

// Next advances c to the next value.
func (c *Cursor[T]) Next() error {
	if err := c.check("Next"); err != nil {
		return err
	}
	if c.erased {
		c.erased = false
		return nil
	}
	if c.index == pastEnd {
		return nil
	}
	c.index++
	c.normalize()
	return nil
}

// Value returns the value c rests on.
func (c *Cursor[T]) Value() (T, error) {
	if c.index == pastEnd || c.erased {
		var zero T
		return zero, lset.InvalidPosition("array.Cursor.Value")
	}
	v, ok := c.list.Get(c.index)
	if !ok { // stale cursor on a shrunken list
		return v, lset.InvalidPosition("array.Cursor.Value")
	}
	return v, nil
}

// Erase removes the value c rests on from the list and returns it.
func (c *Cursor[T]) Erase() (T, error) {
	var zero T
	if err := c.check("Erase"); err != nil {
		return zero, err
	}
	if c.erased {
		return zero, errors.Wrap(lset.ErrCannotErase, "array.Cursor.Erase")
	}
	if c.index == pastEnd {
		return zero, lset.InvalidPosition("array.Cursor.Erase")
	}
	v, _ := c.list.Remove(c.index)
	c.expected = c.list.modCount
	c.erased = true
	c.normalize()
	return v, nil
}

// Equal returns true if c and other rest on the same position of the same list.
func (c *Cursor[T]) Equal(other lset.Iterator[T]) (bool, error) {
	o, ok := other.(*Cursor[T])
	if !ok || o == nil {
		return false, errors.Wrapf(lset.ErrIteratorType, "array.Cursor compared to %T", other)
	}
	if c.list != o.list {
		return false, errors.Wrap(lset.ErrDistinctContainers, "array.Cursor.Equal")
	}
	return c.index == o.index, nil
}

func (c *Cursor[T]) String() string {
	return fmt.Sprintf("%s(index=%d,expected_mod_count=%d,can_erase=%t)",
		c.list.String(), c.index, c.expected, !c.erased)
}
