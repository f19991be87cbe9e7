package linked

import (
	"iter"
	"slices"
)

// --- Bulk operations -------------------------------------------------------

// InsertAll inserts every value of seq into s. Returns the number of values
// actually added; duplicates within seq and values already present count 0.
func (s *LinkedSet[T]) InsertAll(seq iter.Seq[T]) int {
	count := 0
	for v := range seq {
		count += s.Insert(v)
	}
	return count
}

// EraseAll removes every value of seq from s. Returns the number of values
// actually removed; values of seq not present in s count 0.
//
// seq is drained before the first value is removed, so it may be a view of s
// itself (S.EraseAll(S.All()) clears S).
func (s *LinkedSet[T]) EraseAll(seq iter.Seq[T]) int {
	count := 0
	for _, v := range slices.Collect(seq) {
		count += s.Erase(v)
	}
	tracer().Debugf("erase_all removed %d values", count)
	return count
}

// RetainAll removes every value from s which is not contained in seq.
// Returns the number of values removed.
func (s *LinkedSet[T]) RetainAll(seq iter.Seq[T]) int {
	keep := From(seq)
	count := 0
	it := s.Begin()
	for !it.Done() {
		v, err := it.Value()
		if err == nil && !keep.Contains(v) {
			if _, err = it.Erase(); err == nil {
				count++
			}
		}
		if err == nil {
			err = it.Next()
		}
		if err != nil {
			tracer().Errorf("retain_all aborted: %v", err)
			break
		}
	}
	tracer().Debugf("retain_all removed %d values", count)
	return count
}

// ContainsAll returns true if every value of seq is contained in s.
// An empty sequence is contained in every set.
func (s *LinkedSet[T]) ContainsAll(seq iter.Seq[T]) bool {
	for v := range seq {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// --- Relations -------------------------------------------------------------

// Relations between sets ignore insertion order. They form a partial order:
// two sets may be incomparable, with neither S ⊆ T nor T ⊆ S holding.

// Equal returns true if s and other contain the same values, regardless of order.
func (s *LinkedSet[T]) Equal(other *LinkedSet[T]) bool {
	return s.Size() == other.Size() && other.ContainsAll(s.All())
}

// NotEqual is the negation of Equal.
func (s *LinkedSet[T]) NotEqual(other *LinkedSet[T]) bool {
	return !s.Equal(other)
}

// SubsetOf returns true if every value of s is contained in other (s ⊆ other).
func (s *LinkedSet[T]) SubsetOf(other *LinkedSet[T]) bool {
	return s.Size() <= other.Size() && other.ContainsAll(s.All())
}

// ProperSubsetOf returns true if s ⊆ other and s ≠ other.
func (s *LinkedSet[T]) ProperSubsetOf(other *LinkedSet[T]) bool {
	// with s ⊆ other, equal sizes imply equality
	return s.Size() < other.Size() && s.SubsetOf(other)
}

// SupersetOf returns true if every value of other is contained in s (s ⊇ other).
func (s *LinkedSet[T]) SupersetOf(other *LinkedSet[T]) bool {
	return other.SubsetOf(s)
}

// ProperSupersetOf returns true if s ⊇ other and s ≠ other.
func (s *LinkedSet[T]) ProperSupersetOf(other *LinkedSet[T]) bool {
	return other.ProperSubsetOf(s)
}
