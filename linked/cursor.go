package linked

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lset"
)

// cursorState tells whether a cursor may erase at its current position.
type cursorState uint8

const (
	atValue cursorState = iota // cursor rests on a value, erase permitted
	erased                     // value erased, cursor rests on its successor and has to be re-armed
)

// Cursor is a fail-fast position token over a LinkedSet. Cursors are created
// by Begin and End.
//
// A cursor rests either on a value or at the past-the-end position. After a
// call to Erase it rests on the successor of the erased value, but will not
// let clients see it: the next call to Next re-arms the cursor without moving
// it. This keeps the canonical loop
//
//	for it := S.Begin(); !it.Done(); it.Next() { … }
//
// correct in the presence of erasures.
type Cursor[T comparable] struct {
	set      *LinkedSet[T]
	prev     *node[T] // predecessor of current, needed for erasure
	current  *node[T] // nil at the past-the-end position
	expected int      // modification count of set we expect
	state    cursorState
}

var _ lset.Iterator[int] = (*Cursor[int])(nil)

// Begin returns a cursor positioned at the first value of s, or at the
// past-the-end position if s is empty.
func (s *LinkedSet[T]) Begin() *Cursor[T] {
	s.lazyInit()
	return &Cursor[T]{
		set:      s,
		prev:     s.sentinel,
		current:  s.sentinel.next,
		expected: s.modCount,
	}
}

// End returns a cursor at the past-the-end position of s. It does not refer
// to the current tail, thus stays a valid marker if more values are appended.
func (s *LinkedSet[T]) End() *Cursor[T] {
	s.lazyInit()
	return &Cursor[T]{
		set:      s,
		expected: s.modCount,
	}
}

func (c *Cursor[T]) check(op string) error {
	if c.expected != c.set.modCount {
		return lset.ConcurrentModification("linked.Cursor."+op, c.expected, c.set.modCount)
	}
	return nil
}

// Done is true if c is at the past-the-end position.
func (c *Cursor[T]) Done() bool {
	return c.current == nil
}

// Next advances c to the next value. If the set has been modified since c
// has been created (other than through c), Next returns an error wrapping
// lset.ErrConcurrentModification. At the past-the-end position Next does nothing.
func (c *Cursor[T]) Next() error {
	if err := c.check("Next"); err != nil {
		return err
	}
	if c.state == erased {
		c.state = atValue // already on the successor
		return nil
	}
	if c.current == nil {
		return nil
	}
	c.prev, c.current = c.current, c.current.next
	return nil
}

// PostNext advances c like Next does, but returns a copy of c as it has been
// before advancing.
func (c *Cursor[T]) PostNext() (*Cursor[T], error) {
	before := *c
	if err := c.Next(); err != nil {
		return nil, err
	}
	return &before, nil
}

// Value returns the value c rests on. It is an error to call Value at the
// past-the-end position or directly after an erase through c.
//
// Value does not check for concurrent modifications. For a stale cursor it
// may return a value which is no longer in the set.
func (c *Cursor[T]) Value() (T, error) {
	if c.current == nil || c.state == erased {
		var zero T
		return zero, lset.InvalidPosition("linked.Cursor.Value")
	}
	return c.current.value, nil
}

// Ref returns a pointer to the value c rests on, with the same restrictions
// as Value. Clients modifying a value through this pointer are responsible for
// not creating duplicates.
func (c *Cursor[T]) Ref() (*T, error) {
	if c.current == nil || c.state == erased {
		return nil, lset.InvalidPosition("linked.Cursor.Ref")
	}
	return &c.current.value, nil
}

// Erase removes the value c rests on from the set and returns it. c stays
// valid and rests on the successor of the erased value. Erase may be called
// once per position; a second call without an intervening Next returns an
// error wrapping lset.ErrCannotErase.
func (c *Cursor[T]) Erase() (T, error) {
	var zero T
	if err := c.check("Erase"); err != nil {
		return zero, err
	}
	if c.state == erased {
		return zero, errors.Wrap(lset.ErrCannotErase, "linked.Cursor.Erase")
	}
	if c.current == nil {
		return zero, lset.InvalidPosition("linked.Cursor.Erase")
	}
	v := c.set.eraseAfter(c.prev)
	c.current = c.prev.next
	c.expected = c.set.modCount
	c.state = erased
	return v, nil
}

// Equal returns true if c and other rest on the same position. Both cursors
// have to iterate over the same set, otherwise an error wrapping
// lset.ErrDistinctContainers is returned. Comparing c to a cursor of a
// different container family returns an error wrapping lset.ErrIteratorType.
func (c *Cursor[T]) Equal(other lset.Iterator[T]) (bool, error) {
	o, ok := other.(*Cursor[T])
	if !ok || o == nil {
		return false, errors.Wrapf(lset.ErrIteratorType, "linked.Cursor compared to %T", other)
	}
	if c.set != o.set {
		return false, errors.Wrap(lset.ErrDistinctContainers, "linked.Cursor.Equal")
	}
	return c.current == o.current, nil
}

// NotEqual is the negation of Equal, with identical error conditions.
func (c *Cursor[T]) NotEqual(other lset.Iterator[T]) (bool, error) {
	eq, err := c.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// String is a debug Stringer for cursors. It uses the diagnostic form of the
// set, annotated by the cursor's state.
func (c *Cursor[T]) String() string {
	return fmt.Sprintf("%s(current=%p,expected_mod_count=%d,can_erase=%t)",
		c.set.DebugString(), c.current, c.expected, c.state == atValue)
}
