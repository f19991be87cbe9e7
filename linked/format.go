package linked

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cnf/structhash"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// String returns the plain form of s, e.g. "set[a,b,c]", with values in
// insertion order.
func (s *LinkedSet[T]) String() string {
	var b bytes.Buffer
	s.Print(&b)
	return b.String()
}

// Print writes the plain form of s to w.
func (s *LinkedSet[T]) Print(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("set[")
	for p := s.first(); p != nil; p = p.next {
		if p != s.sentinel.next {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", p.value)
	}
	b.WriteString("]")
	_, err := w.Write(b.Bytes())
	return err
}

// DebugString is a diagnostic form of s. It lists all values together with
// their position, plus the cached size and the modification count:
//
//	LinkedSet[0:a,1:b](used=2,mod_count=3)
func (s *LinkedSet[T]) DebugString() string {
	var b bytes.Buffer
	b.WriteString("LinkedSet[")
	i := 0
	for p := s.first(); p != nil; p = p.next {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d:%v", i, p.value)
		i++
	}
	fmt.Fprintf(&b, "](used=%d,mod_count=%d)", s.used, s.modCount)
	return b.String()
}

// Fingerprint returns a hash of the values of s. The hash respects insertion
// order: two sets share a fingerprint if they hold the same values in the same
// order.
func (s *LinkedSet[T]) Fingerprint() (string, error) {
	h, err := structhash.Hash(struct{ Values []T }{s.Values()}, 1)
	if err != nil {
		return "", errors.Wrap(err, "cannot fingerprint linked set")
	}
	return h, nil
}

// Sorted returns the values of s, sorted by value instead of insertion order.
func Sorted[T constraints.Ordered](s *LinkedSet[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
