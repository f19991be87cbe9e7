package linked

import (
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/lset"
	"github.com/npillmayer/lset/array"
)

func TestInsertAllCountsNewValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2)
	n := S.InsertAll(lset.Values(2, 3, 3, 4))
	if n != 2 {
		t.Errorf("expected 2 values to be added, is %d", n)
	}
	require.Equal(t, []int{1, 2, 3, 4}, S.Values())
}

func TestEraseAllCountsRemovedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3)
	n := S.EraseAll(lset.Values(2, 2, 5))
	if n != 1 {
		t.Errorf("expected 1 value to be removed, is %d", n)
	}
	require.Equal(t, []int{1, 3}, S.Values())
	if n = S.EraseAll(S.All()); n != 2 || !S.Empty() {
		t.Errorf("expected erasing S from itself to clear S, is %s", S)
	}
}

func TestRetainAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3, 4)
	n := S.RetainAll(lset.Values(2, 3))
	if n != 2 {
		t.Errorf("expected 2 values to be removed, is %d", n)
	}
	if !S.Equal(Of(2, 3)) {
		t.Errorf("expected S = {2,3}, is %s", S)
	}
	S.Insert(5) // tail intact after erasing the last value
	require.Equal(t, []int{2, 3, 5}, S.Values())
	n = S.RetainAll(lset.Values[int]())
	require.Equal(t, 3, n)
	require.True(t, S.Empty())
	n = S.RetainAll(lset.Values(1))
	require.Equal(t, 0, n)
}

func TestContainsAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of("a", "b", "c")
	require.True(t, S.ContainsAll(lset.Values("c", "a")))
	require.True(t, S.ContainsAll(lset.Values[string]()))
	require.False(t, S.ContainsAll(lset.Values("a", "x")))
}

func TestBulkOpsWithGodsContainers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	tree := treeset.NewWithIntComparator(4, 2, 3)
	S := From(array.Seq[int](tree))
	require.Equal(t, []int{2, 3, 4}, S.Values())
	L := array.New(3, 4, 5)
	require.Equal(t, 1, S.InsertAll(L.All()))
	require.Equal(t, 1, S.RetainAll(L.All()))
	require.Equal(t, []int{3, 4, 5}, S.Values())
	require.Equal(t, 2, S.RetainAll(array.New(4, 6).All()))
	require.Equal(t, []int{4}, S.Values())
}

func TestRetainAllOfItself(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3)
	require.Equal(t, 0, S.RetainAll(S.All()))
	require.Equal(t, []int{1, 2, 3}, S.Values())
	require.Equal(t, 2, S.RetainAll(Of(3, 1).All()))
	S.Insert(4) // cursor erasure kept the tail intact
	require.Equal(t, []int{1, 3, 4}, S.Values())
}

func TestRelations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	A := Of(1, 2, 3)
	B := Of(1, 2, 3, 4)
	if !A.SubsetOf(B) {
		t.Errorf("expected {1,2,3} <= {1,2,3,4}")
	}
	if A.ProperSubsetOf(Of(3, 2, 1)) {
		t.Errorf("expected {1,2,3} < {1,2,3} to be false")
	}
	if !A.ProperSubsetOf(B) {
		t.Errorf("expected {1,2,3} < {1,2,3,4}")
	}
	if !B.SupersetOf(A) || !B.ProperSupersetOf(A) {
		t.Errorf("expected {1,2,3,4} > {1,2,3}")
	}
	if B.SubsetOf(A) || A.SupersetOf(B) {
		t.Errorf("expected {1,2,3,4} not <= {1,2,3}")
	}
}

func TestIncomparableSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	A, B := Of(1, 2), Of(2, 3)
	require.False(t, A.SubsetOf(B))
	require.False(t, A.SupersetOf(B))
	require.False(t, A.ProperSubsetOf(B))
	require.False(t, A.ProperSupersetOf(B))
	require.False(t, A.Equal(B))
	require.True(t, A.NotEqual(B))
	C := Of(1, 2, 3)
	D := Of(4)
	require.False(t, D.ProperSubsetOf(C))
	require.False(t, C.ProperSupersetOf(D))
}

func TestEqualityIsAnEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	A := Of("x", "y", "z")
	B := Of("z", "x", "y")
	C := Of("y", "z", "x")
	require.True(t, A.Equal(A), "reflexive")
	require.True(t, A.Equal(B) && B.Equal(A), "symmetric")
	require.True(t, B.Equal(C) && A.Equal(C), "transitive")
	require.False(t, A.Equal(Of("x", "y")))
	require.False(t, A.Equal(Of("x", "y", "w")))
	sets := []*LinkedSet[string]{A, Of("x"), Of("x", "y"), Of("w"), New[string]()}
	for _, S := range sets {
		for _, T := range sets {
			both := S.SubsetOf(T) && T.SubsetOf(S)
			require.Equal(t, S.Equal(T), both, "%s vs %s", S, T)
			require.False(t, S.ProperSubsetOf(T) && T.ProperSubsetOf(S))
		}
		require.False(t, S.ProperSubsetOf(S), "irreflexive")
	}
}

func TestEraseAllRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3, 4)
	original := S.Copy()
	inputs := lset.Values(2, 4, 6)
	n := S.EraseAll(inputs)
	require.Equal(t, 2, n)
	S.InsertAll(lset.Values(2, 4))
	require.True(t, S.Equal(original))
	S.EraseAll(inputs)
	S.InsertAll(inputs)
	require.True(t, S.Equal(Of(1, 3, 2, 4, 6)))
}
