package rbtree

import (
	"iter"

	"github.com/npillmayer/rbtree/arena"
)

// Visitor is called for values during a depth-first traversal, together with
// the context given to the traversal. Returning false stops the traversal.
//
// Visitors must not modify the tree.
type Visitor[T any] func(value T, ctx any) bool

// InOrder visits all values in ascending order.
func (t *Tree[T]) InOrder(visit Visitor[T], ctx any) {
	if t == nil || visit == nil {
		return
	}
	t.inOrder(t.root, visit, ctx)
}

// PreOrder visits every node before its subtrees, left subtree first.
func (t *Tree[T]) PreOrder(visit Visitor[T], ctx any) {
	if t == nil || visit == nil {
		return
	}
	t.preOrder(t.root, visit, ctx)
}

// PostOrder visits every node after its subtrees, left subtree first.
func (t *Tree[T]) PostOrder(visit Visitor[T], ctx any) {
	if t == nil || visit == nil {
		return
	}
	t.postOrder(t.root, visit, ctx)
}

// Recursion depth is bounded by the height of the tree, i.e. O(log n).
// Links are copied before calling out, as visitors may allocate from a shared
// arena.

func (t *Tree[T]) inOrder(h arena.Handle, visit Visitor[T], ctx any) bool {
	if h == arena.Nil {
		return true
	}
	n := *t.node(h)
	return t.inOrder(n.left, visit, ctx) && visit(n.value, ctx) && t.inOrder(n.right, visit, ctx)
}

func (t *Tree[T]) preOrder(h arena.Handle, visit Visitor[T], ctx any) bool {
	if h == arena.Nil {
		return true
	}
	n := *t.node(h)
	return visit(n.value, ctx) && t.preOrder(n.left, visit, ctx) && t.preOrder(n.right, visit, ctx)
}

func (t *Tree[T]) postOrder(h arena.Handle, visit Visitor[T], ctx any) bool {
	if h == arena.Nil {
		return true
	}
	n := *t.node(h)
	return t.postOrder(n.left, visit, ctx) && t.postOrder(n.right, visit, ctx) && visit(n.value, ctx)
}

// All returns an iterator over all values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		for h := t.minimum(t.root); h != arena.Nil; h = t.successor(h) {
			if !yield(t.node(h).value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		for h := t.maximum(t.root); h != arena.Nil; h = t.predecessor(h) {
			if !yield(t.node(h).value) {
				return
			}
		}
	}
}

// Values returns all values in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}
