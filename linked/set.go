package linked

import (
	"iter"

	"github.com/npillmayer/lset"
)

// node is a cell of the linked list. The list is anchored at a sentinel node,
// which never holds a valid value.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedSet is a set type which remembers insertion order. The zero value is an
// empty set ready to use.
type LinkedSet[T comparable] struct {
	sentinel *node[T] // permanent anchor in front of the first value
	tail     *node[T] // last node of the list, sentinel if empty
	used     int      // cached number of values
	modCount int      // incremented for every structural change
}

// New creates an empty set.
func New[T comparable]() *LinkedSet[T] {
	return new(LinkedSet[T]).init()
}

// NewWithCapacity creates an empty set. The capacity hint is accepted for
// symmetry with other containers, but a linked list has nothing to pre-allocate.
func NewWithCapacity[T comparable](capacity int) *LinkedSet[T] {
	tracer().Debugf("linked set created with capacity hint %d", capacity)
	return New[T]()
}

// Of creates a set from a literal list of values. Duplicates are dropped:
//
//	S := Of(1, 2, 2, 3)    // S = set[1,2,3]
func Of[T comparable](values ...T) *LinkedSet[T] {
	s := New[T]()
	s.InsertAll(lset.Values(values...))
	return s
}

// From creates a set from a sequence of values. The sequence is consumed once.
func From[T comparable](seq iter.Seq[T]) *LinkedSet[T] {
	s := New[T]()
	s.InsertAll(seq)
	return s
}

func (s *LinkedSet[T]) init() *LinkedSet[T] {
	s.sentinel = &node[T]{}
	s.tail = s.sentinel
	s.used = 0
	return s
}

func (s *LinkedSet[T]) lazyInit() {
	if s.sentinel == nil {
		s.init()
	}
}

// first returns the node of the first value, or nil.
func (s *LinkedSet[T]) first() *node[T] {
	if s.sentinel == nil {
		return nil
	}
	return s.sentinel.next
}

// Copy creates a deep copy of s. The copy shares no nodes with s.
func (s *LinkedSet[T]) Copy() *LinkedSet[T] {
	c := New[T]()
	for p := s.first(); p != nil; p = p.next {
		c.append(p.value)
	}
	return c
}

// Assign replaces the content of s by the values of other, in other's
// insertion order. Assigning a set to itself does nothing.
func (s *LinkedSet[T]) Assign(other *LinkedSet[T]) *LinkedSet[T] {
	if s == other {
		return s
	}
	s.Clear()
	for p := other.first(); p != nil; p = p.next {
		s.append(p.value)
	}
	return s
}

// --- Queries ---------------------------------------------------------------

// Empty returns true if s holds no values.
func (s *LinkedSet[T]) Empty() bool {
	return s.used == 0
}

// Size returns the number of values in s.
func (s *LinkedSet[T]) Size() int {
	return s.used
}

// Contains returns true if v is a member of s. This is a linear scan.
func (s *LinkedSet[T]) Contains(v T) bool {
	for p := s.first(); p != nil; p = p.next {
		if p.value == v {
			return true
		}
	}
	return false
}

// Values returns the values of s in insertion order, as a new slice.
func (s *LinkedSet[T]) Values() []T {
	values := make([]T, 0, s.used)
	for p := s.first(); p != nil; p = p.next {
		values = append(values, p.value)
	}
	return values
}

// All returns a sequence over the values of s in insertion order, to be used
// with range:
//
//	for v := range S.All() {
//	    …
//	}
//
// The sequence is driven by a cursor. Structural changes of s from within
// the loop body will cause a panic with an error wrapping
// lset.ErrConcurrentModification.
func (s *LinkedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		lset.Cursor[T](s.Begin())(yield)
	}
}

// --- Commands --------------------------------------------------------------

// Insert adds v to s, if it is not already present. Returns the number of
// values added, i.e. 1 or 0.
func (s *LinkedSet[T]) Insert(v T) int {
	if s.Contains(v) {
		return 0
	}
	s.append(v)
	return 1
}

// append links a new node for v behind the tail. v must not be present.
func (s *LinkedSet[T]) append(v T) {
	s.lazyInit()
	s.tail.next = &node[T]{value: v}
	s.tail = s.tail.next
	s.used++
	s.modCount++
}

// Erase removes v from s. Returns the number of values removed, i.e. 1 or 0.
func (s *LinkedSet[T]) Erase(v T) int {
	if s.sentinel == nil {
		return 0
	}
	for p := s.sentinel; p.next != nil; p = p.next {
		if p.next.value == v {
			s.eraseAfter(p)
			return 1
		}
	}
	return 0
}

// eraseAfter unlinks the successor of p, which must exist, and returns its value.
// The unlinked node keeps its link, so stale cursors resting on it still
// see a consistent (if outdated) list.
func (s *LinkedSet[T]) eraseAfter(p *node[T]) T {
	victim := p.next
	p.next = victim.next
	if victim == s.tail {
		s.tail = p
	}
	s.used--
	s.modCount++
	return victim.value
}

// Clear removes all values from s. Clear is a structural change, even for an
// empty set: all cursors on s become invalid.
func (s *LinkedSet[T]) Clear() {
	s.lazyInit()
	s.release()
	s.modCount++
}

// release drops all nodes but the sentinel and leaves them to the garbage
// collector.
func (s *LinkedSet[T]) release() {
	s.sentinel.next = nil
	s.tail = s.sentinel
	s.used = 0
}
