package rbtree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/rbtree/arena"
)

func TestRandomOperationsPreserveInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		rnd := rand.New(rand.NewSource(seed))
		tree := NewOrdered[int]()
		present := make(map[int]bool)
		for i := 0; i < 1500; i++ {
			v := rnd.Intn(200)
			if rnd.Intn(100) < 55 {
				it, err := tree.Insert(v)
				if err != nil {
					t.Fatalf("seed %d: insert %d failed: %v", seed, v, err)
				}
				if it.Value() != v {
					t.Fatalf("seed %d: insert %d returned iterator to %d", seed, v, it.Value())
				}
				present[v] = true
			} else {
				removed := tree.RemoveValue(v)
				if removed != present[v] {
					t.Fatalf("seed %d: RemoveValue(%d) = %v, expected %v", seed, v, removed, present[v])
				}
				delete(present, v)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("seed %d, op %d: %v", seed, i, err)
			}
			if tree.Len() != len(present) {
				t.Fatalf("seed %d, op %d: count %d, expected %d", seed, i, tree.Len(), len(present))
			}
		}
		for v := 0; v < 200; v++ {
			it := tree.Lookup(v)
			if present[v] != !it.IsEnd() {
				t.Fatalf("seed %d: lookup(%d) inconsistent with reference set", seed, v)
			}
			if !it.IsEnd() && it.Value() != v {
				t.Fatalf("seed %d: lookup(%d) found %d", seed, v, it.Value())
			}
		}
		values := tree.Values()
		if !slices.IsSorted(values) {
			t.Fatalf("seed %d: values not sorted: %v", seed, values)
		}
	}
}

func TestRemoveAllInRandomOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	values := rnd.Perm(300)
	tree := makeIntTree(t, values...)
	rnd.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	for i, v := range values {
		tree.Remove(tree.Lookup(v))
		if err := tree.Check(); err != nil {
			t.Fatalf("removal #%d of %d: %v", i, v, err)
		}
	}
	if !tree.IsEmpty() || tree.Config().Arena.Live() != 0 {
		t.Errorf("expected empty tree and arena after removing everything")
	}
}

func TestHeightIsLogarithmic(t *testing.T) {
	tree := NewOrdered[int]()
	for i := 0; i < 1023; i++ {
		tree.Insert(i)
	}
	// 2*log2(n+1) = 20
	if h := tree.Height(); h > 20 {
		t.Errorf("height %d exceeds red-black bound for 1023 nodes", h)
	}
}

func TestInsertFailsAtomicallyOnExhaustedArena(t *testing.T) {
	cfg := Config[int]{Less: Less[int], Arena: NewArena[int](3)}
	tree := makeIntTreeCfg(t, cfg, 1, 2, 3)
	it, err := tree.Insert(4)
	if !errors.Is(err, ErrAllocation) || !errors.Is(err, arena.ErrExhausted) {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if !it.IsEnd() {
		t.Errorf("expected end iterator on failed insertion")
	}
	if tree.Len() != 3 || !slices.Equal(tree.Values(), []int{1, 2, 3}) {
		t.Errorf("tree changed by failed insertion: %v", tree.Values())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("self-check failed: %v", err)
	}
	// duplicates need no node
	if _, err := tree.Insert(2); err != nil {
		t.Errorf("duplicate insertion into full arena failed: %v", err)
	}
	tree.RemoveValue(1)
	if _, err := tree.Insert(4); err != nil {
		t.Errorf("insertion after removal failed: %v", err)
	}
}

func makeIntTreeCfg(t *testing.T, cfg Config[int], values ...int) *Tree[int] {
	t.Helper()
	tree, err := FromValues(cfg, values...)
	if err != nil {
		t.Fatalf("unexpected error building tree: %v", err)
	}
	return tree
}

func TestFromValuesReleasesPartialTree(t *testing.T) {
	a := NewArena[int](4)
	_, err := FromValues(Config[int]{Less: Less[int], Arena: a}, 1, 2, 3, 4, 5, 6)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if a.Live() != 0 {
		t.Errorf("expected partial tree to be released, %d nodes live", a.Live())
	}
}

func TestTreesSharingAnArena(t *testing.T) {
	a := NewArena[int](0)
	cfg := Config[int]{Less: Less[int], Arena: a}
	t1, _ := New(cfg)
	t2, _ := New(cfg)
	for i := 0; i < 50; i++ {
		t1.Insert(i)
		t2.Insert(100 - i)
	}
	if a.Live() != 100 {
		t.Fatalf("expected 100 live nodes, got %d", a.Live())
	}
	for i := 0; i < 50; i += 2 {
		t1.RemoveValue(i)
	}
	if err := t1.Check(); err != nil {
		t.Fatalf("t1: %v", err)
	}
	if err := t2.Check(); err != nil {
		t.Fatalf("t2: %v", err)
	}
	t1.Clear()
	if a.Live() != t2.Len() {
		t.Errorf("clearing t1 touched nodes of t2: live=%d, len(t2)=%d", a.Live(), t2.Len())
	}
	if err := t2.Check(); err != nil {
		t.Errorf("t2 after clearing t1: %v", err)
	}
}

func TestIteratorStepping(t *testing.T) {
	tree := makeIntTree(t, 50, 20, 80, 10, 30, 70, 90, 60)
	var forward []int
	for it := tree.Min(); !it.IsEnd(); it = it.Next() {
		forward = append(forward, it.Value())
	}
	if !slices.Equal(forward, []int{10, 20, 30, 50, 60, 70, 80, 90}) {
		t.Errorf("forward iteration = %v", forward)
	}
	var backward []int
	for it := tree.End().Prev(); !it.IsEnd(); it = it.Prev() {
		backward = append(backward, it.Value())
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, forward) {
		t.Errorf("backward iteration = %v", backward)
	}
	if !tree.Max().Next().IsEnd() || !tree.Min().Prev().IsEnd() {
		t.Errorf("expected stepping beyond the ends to yield the end iterator")
	}
	if !tree.End().Next().IsEnd() {
		t.Errorf("expected end iterator to stay at the end")
	}
	if !slices.Equal(slices.Collect(tree.Backward()), []int{90, 80, 70, 60, 50, 30, 20, 10}) {
		t.Errorf("Backward() out of order")
	}
}

func TestEmptyTreeIterators(t *testing.T) {
	tree := NewOrdered[string]()
	if !tree.Min().IsEnd() || !tree.Max().IsEnd() || !tree.Root().IsEnd() {
		t.Errorf("expected end iterators for an empty tree")
	}
	if !tree.End().Prev().IsEnd() {
		t.Errorf("expected Prev of end to be end for an empty tree")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected dereferencing the end iterator to panic")
		}
	}()
	_ = tree.End().Value()
}

func TestIteratorsSurviveUnrelatedRemovals(t *testing.T) {
	tree := NewOrdered[int]()
	iters := make(map[int]Iterator[int])
	for i := 0; i < 100; i++ {
		it, _ := tree.Insert(i)
		iters[i] = it
	}
	for i := 0; i < 100; i += 3 {
		tree.Remove(iters[i])
		delete(iters, i)
	}
	for v, it := range iters {
		if it.Value() != v {
			t.Fatalf("iterator for %d now yields %d", v, it.Value())
		}
	}
}

func TestSuccessorKeepsItsNodeOnRemoval(t *testing.T) {
	tree := makeIntTree(t, 10, 9, 15, 1, 5, 12, 20, 14)
	succ := tree.Lookup(20)
	tree.RemoveValue(15)
	if succ.Value() != 20 {
		t.Errorf("iterator to successor changed value to %d", succ.Value())
	}
	if !tree.Lookup(20).Equal(succ) {
		t.Errorf("successor has been moved to a different node")
	}
}

func TestRemoveWithForeignIteratorPanics(t *testing.T) {
	t1 := makeIntTree(t, 1, 2, 3)
	t2 := makeIntTree(t, 1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Errorf("expected removal with a foreign iterator to panic")
		}
	}()
	t1.Remove(t2.Lookup(2))
}

func TestCeilAndFloor(t *testing.T) {
	tree := makeIntTree(t, 10, 20, 30, 40)
	cases := []struct {
		query       int
		ceil, floor int // -1 for end
	}{
		{5, 10, -1},
		{10, 10, 10},
		{15, 20, 10},
		{40, 40, 40},
		{45, -1, 40},
	}
	value := func(it Iterator[int]) int {
		if it.IsEnd() {
			return -1
		}
		return it.Value()
	}
	for _, c := range cases {
		if got := value(tree.Ceil(c.query)); got != c.ceil {
			t.Errorf("Ceil(%d) = %d, want %d", c.query, got, c.ceil)
		}
		if got := value(tree.Floor(c.query)); got != c.floor {
			t.Errorf("Floor(%d) = %d, want %d", c.query, got, c.floor)
		}
	}
}

func TestTraversalOrders(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3)
	appendTo := func(v int, ctx any) bool {
		out := ctx.(*[]int)
		*out = append(*out, v)
		return true
	}
	var in, pre, post []int
	tree.InOrder(appendTo, &in)
	tree.PreOrder(appendTo, &pre)
	tree.PostOrder(appendTo, &post)
	if !slices.Equal(in, []int{1, 2, 3}) {
		t.Errorf("in-order = %v", in)
	}
	if !slices.Equal(pre, []int{2, 1, 3}) {
		t.Errorf("pre-order = %v", pre)
	}
	if !slices.Equal(post, []int{1, 3, 2}) {
		t.Errorf("post-order = %v", post)
	}
}

func TestTraversalStopsEarly(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	count := 0
	tree.InOrder(func(v int, _ any) bool {
		count++
		return v < 4
	}, nil)
	if count != 4 {
		t.Errorf("expected traversal to stop after 4 values, visited %d", count)
	}
	var firstTwo []int
	for v := range tree.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	if !slices.Equal(firstTwo, []int{1, 2}) {
		t.Errorf("range over All = %v", firstTwo)
	}
}

func TestStaleIteratorPanics(t *testing.T) {
	tree := makeIntTree(t, 3, 5, 8)
	stale := tree.Lookup(5)
	tree.Remove(stale)
	for name, use := range map[string]func(){
		"Value":  func() { stale.Value() },
		"Ref":    func() { stale.Ref() },
		"Next":   func() { stale.Next() },
		"Prev":   func() { stale.Prev() },
		"Left":   func() { stale.Left() },
		"Right":  func() { stale.Right() },
		"Parent": func() { stale.Parent() },
		"Color":  func() { stale.Color() },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected %s on a removed node to panic", name)
				}
			}()
			use()
		}()
	}
	if tree.Len() != 2 {
		t.Errorf("expected 2 values to remain, have %d", tree.Len())
	}
}

func TestNilTreeReads(t *testing.T) {
	var tree *Tree[int]
	if !tree.Min().IsEnd() || !tree.Max().IsEnd() || !tree.Root().IsEnd() {
		t.Errorf("expected end iterators for a nil tree")
	}
	if !tree.Lookup(1).IsEnd() || tree.Contains(1) {
		t.Errorf("nil tree must not contain values")
	}
	if !tree.Ceil(1).IsEnd() || !tree.Floor(1).IsEnd() {
		t.Errorf("expected end iterators for bounds in a nil tree")
	}
	if tree.Len() != 0 || tree.Height() != 0 || len(tree.Values()) != 0 {
		t.Errorf("nil tree must be empty")
	}
}
