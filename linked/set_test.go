package linked

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func TestInsertIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := New[string]()
	if n := S.Insert("a"); n != 1 {
		t.Errorf("expected insert of new value to return 1, is %d", n)
	}
	S.Insert("b")
	if n := S.Insert("a"); n != 0 {
		t.Errorf("expected insert of present value to return 0, is %d", n)
	}
	if S.Size() != 2 {
		t.Errorf("expected size of S to be 2, is %d", S.Size())
	}
	if S.String() != "set[a,b]" {
		t.Errorf("expected S = set[a,b], is %s", S)
	}
}

func TestErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of("a", "b")
	if n := S.Erase("b"); n != 1 {
		t.Errorf("expected erase of b to return 1, is %d", n)
	}
	if S.Size() != 1 {
		t.Errorf("expected size of S to be 1, is %d", S.Size())
	}
	if !S.Contains("a") || S.Contains("b") {
		t.Errorf("expected S to contain a only, is %s", S)
	}
	if n := S.Erase("x"); n != 0 || S.Size() != 1 {
		t.Errorf("expected erase of non-member to be a no-op, returned %d", n)
	}
}

func TestOfDropsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 2, 3)
	require.Equal(t, 3, S.Size())
	require.Equal(t, []int{1, 2, 3}, S.Values())
	var collected []int
	for v := range S.All() {
		collected = append(collected, v)
	}
	require.Equal(t, []int{1, 2, 3}, collected)
}

func TestZeroValueIsEmptySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	var S LinkedSet[int]
	if !S.Empty() || S.Size() != 0 || S.Contains(0) {
		t.Errorf("expected zero value to be an empty set")
	}
	if S.Erase(0) != 0 {
		t.Errorf("expected erase on zero value to be a no-op")
	}
	if S.String() != "set[]" {
		t.Errorf("expected zero value to print as set[], is %s", S.String())
	}
	S.Insert(7)
	if !S.Contains(7) || S.Size() != 1 {
		t.Errorf("expected zero value to accept inserts, is %s", S.String())
	}
}

func TestEraseTailKeepsAppendPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3)
	S.Erase(3)
	S.Insert(4)
	require.Equal(t, []int{1, 2, 4}, S.Values())
	S.Erase(1)
	S.Erase(2)
	S.Erase(4)
	require.True(t, S.Empty())
	S.Insert(5)
	require.Equal(t, []int{5}, S.Values())
}

func TestReinsertDoesNotMove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of("x", "y", "z")
	S.Insert("x")
	S.Insert("w")
	require.Equal(t, []string{"x", "y", "z", "w"}, S.Values())
}

// An ordered map serves as a reference model for insertion order.
func TestInsertionOrderAgainstOrderedMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	S := New[int]()
	model := orderedmap.New[int, struct{}]()
	for i := 0; i < 1000; i++ {
		v := rnd.Intn(40)
		if rnd.Intn(3) == 0 {
			_, present := model.Delete(v)
			n := S.Erase(v)
			require.Equal(t, present, n == 1, "erase of %d", v)
		} else {
			_, present := model.Set(v, struct{}{})
			n := S.Insert(v)
			require.Equal(t, !present, n == 1, "insert of %d", v)
		}
	}
	var expected []int
	for pair := model.Oldest(); pair != nil; pair = pair.Next() {
		expected = append(expected, pair.Key)
	}
	require.Equal(t, model.Len(), S.Size())
	require.Equal(t, expected, S.Values())
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3)
	S.Clear()
	if !S.Empty() || S.Size() != 0 {
		t.Errorf("expected S to be empty after clear, is %s", S.DebugString())
	}
	if S.Contains(1) {
		t.Errorf("expected S not to contain 1 after clear")
	}
	S.Insert(3)
	require.Equal(t, []int{3}, S.Values())
}

func TestCopyIsDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3)
	C := S.Copy()
	C.Erase(2)
	C.Insert(4)
	require.Equal(t, []int{1, 2, 3}, S.Values())
	require.Equal(t, []int{1, 3, 4}, C.Values())
}

func TestAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of("a", "b")
	before := S.DebugString()
	S.Assign(S)
	if S.DebugString() != before {
		t.Errorf("expected self-assignment to be a no-op, is %s", S.DebugString())
	}
	T := Of("c", "d", "e")
	S.Assign(T)
	require.Equal(t, []string{"c", "d", "e"}, S.Values())
	T.Insert("f")
	require.Equal(t, 3, S.Size())
}

func TestAllPanicsOnModification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(1, 2, 3)
	require.Panics(t, func() {
		for v := range S.All() {
			S.Insert(v + 10)
		}
	})
	require.NotPanics(t, func() {
		for v := range S.All() {
			if v == 2 {
				break
			}
		}
	})
}

func TestFromSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lset.linked")
	defer teardown()
	//
	S := Of(3, 1, 2)
	T := From(S.All())
	require.Equal(t, S.Values(), T.Values())
	U := NewWithCapacity[int](100)
	require.True(t, U.Empty())
}
