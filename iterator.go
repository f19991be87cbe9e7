package lset

import (
	"fmt"
	"iter"
)

// --- A general purpose interface for cursors -------------------------------

// Iterator is the cursor interface shared by all container families of this
// module. A cursor is a position token over a container. It is created by the
// container (usually by calling Begin or End) and captures the container's
// modification count at that time.
//
// Typical usage:
//
//	for it := s.Begin(); !it.Done(); it.Next() {
//	    v, _ := it.Value()
//	    if v == unwanted {
//	        it.Erase()        // cursor stays valid, Next() re-arms it
//	    }
//	}
//
// Cursors are fail-fast: every Next and Erase first checks whether the
// container has been structurally modified by anyone but the cursor itself,
// and reports ErrConcurrentModification if so.
type Iterator[T any] interface {
	// Next moves the cursor to the next position. At the past-the-end position
	// Next is a no-op.
	Next() error
	// Value returns the value at the cursor's position.
	Value() (T, error)
	// Erase removes the value at the cursor's position and returns it.
	Erase() (T, error)
	// Done is true if the cursor is at the past-the-end position.
	Done() bool
	// Equal compares the positions of two cursors of the same container.
	Equal(Iterator[T]) (bool, error)
	fmt.Stringer
}

// --- Sequences -------------------------------------------------------------

// Values wraps a literal list of values into a sequence, suitable as an
// argument for bulk operations:
//
//	s.InsertAll(lset.Values(1, 2, 3))
func Values[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Cursor wraps an iterator into a sequence. The sequence starts at the
// iterator's current position and consumes the iterator. If the iterator
// reports an error (e.g., because the container has been modified
// from within the loop body), the sequence panics with this error.
func Cursor[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for !it.Done() {
			v, err := it.Value()
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
			if err = it.Next(); err != nil {
				tracer().Errorf("sequence aborted: %v", err)
				panic(err)
			}
		}
	}
}
