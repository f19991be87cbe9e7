package array

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lset"
)

// List is a typed list of values, backed by a gods array list.
type List[T any] struct {
	list     *arraylist.List
	modCount int // incremented for every structural change
}

// New creates a list with initial values.
func New[T any](values ...T) *List[T] {
	l := &List[T]{list: arraylist.New()}
	l.Add(values...)
	return l
}

// Add appends values at the end of l.
func (l *List[T]) Add(values ...T) {
	if len(values) == 0 {
		return
	}
	for _, v := range values {
		l.list.Add(v)
	}
	l.modCount++
}

// Get returns the value at position index. If index is out of range, Get
// returns false.
func (l *List[T]) Get(index int) (T, bool) {
	x, ok := l.list.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	return x.(T), true
}

// Remove removes the value at position index and returns it. If index is out
// of range, the list is unchanged and Remove returns false.
func (l *List[T]) Remove(index int) (T, bool) {
	v, ok := l.Get(index)
	if !ok {
		return v, false
	}
	l.list.Remove(index)
	l.modCount++
	return v, true
}

// Size returns the number of values in l.
func (l *List[T]) Size() int {
	return l.list.Size()
}

// Empty returns true if l holds no values.
func (l *List[T]) Empty() bool {
	return l.list.Empty()
}

// Clear removes all values from l.
func (l *List[T]) Clear() {
	l.list.Clear()
	l.modCount++
}

// Values returns the values of l as a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.list.Size())
	for _, x := range l.list.Values() {
		values = append(values, x.(T))
	}
	return values
}

// All returns a sequence over the values of l, driven by a fail-fast cursor.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		lset.Cursor[T](l.Begin())(yield)
	}
}

// Container exposes the underlying gods list, e.g. for sorting. Structural
// changes made through it are not detected by cursors of l.
func (l *List[T]) Container() containers.Container {
	return l.list
}

// String returns the plain form of l, e.g. "list[1,2,3]".
func (l *List[T]) String() string {
	var b bytes.Buffer
	b.WriteString("list[")
	for i, x := range l.list.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString("]")
	return b.String()
}

// --- Sequences from gods containers ----------------------------------------

// Seq adapts a gods container to a sequence of values of type T. Values of a
// different dynamic type are skipped.
func Seq[T any](c containers.Container) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range c.Values() {
			v, ok := x.(T)
			if !ok {
				tracer().Debugf("skipping value %v of type %T", x, x)
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
