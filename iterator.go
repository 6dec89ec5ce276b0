package rbtree

import "github.com/npillmayer/rbtree/arena"

// Iterator is a cursor referencing a single node of a tree.
//
// Iterators do not own anything and are cheap to copy. An iterator stays valid
// until the node it references is removed or the tree is cleared or moved.
// The end iterator references no node; its zero value is usable only for
// IsEnd.
type Iterator[T any] struct {
	tree *Tree[T]
	h    arena.Handle
}

// IsEnd reports whether it is the end iterator.
func (it Iterator[T]) IsEnd() bool {
	return it.h == arena.Nil
}

// Value returns the value of the referenced node. Calling Value on the end
// iterator panics.
func (it Iterator[T]) Value() T {
	assert(!it.IsEnd(), "rbtree: dereferencing the end iterator")
	it.assertLive()
	return it.tree.node(it.h).value
}

// Ref returns the address of the referenced value. Clients may change parts
// of the value which do not take part in ordering. The address is valid until
// the next insertion into any tree sharing the arena.
//
// Calling Ref on the end iterator panics.
func (it Iterator[T]) Ref() *T {
	assert(!it.IsEnd(), "rbtree: dereferencing the end iterator")
	it.assertLive()
	return &it.tree.node(it.h).value
}

// Next returns an iterator to the in-order successor. The successor of the
// largest value is the end iterator; the end iterator stays at the end.
func (it Iterator[T]) Next() Iterator[T] {
	if it.IsEnd() {
		return it
	}
	it.assertLive()
	return Iterator[T]{tree: it.tree, h: it.tree.successor(it.h)}
}

// Prev returns an iterator to the in-order predecessor. The predecessor of the
// smallest value is the end iterator, the predecessor of the end iterator is
// the largest value.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.IsEnd() {
		if it.tree == nil {
			return it
		}
		return it.tree.Max()
	}
	it.assertLive()
	return Iterator[T]{tree: it.tree, h: it.tree.predecessor(it.h)}
}

// Equal reports whether two iterators reference the same node of the same
// tree. All end iterators of a tree are equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.tree == other.tree && it.h == other.h
}

// Color returns the color of the referenced node; Black for the end iterator.
func (it Iterator[T]) Color() Color {
	if it.IsEnd() {
		return Black
	}
	it.assertLive()
	return it.tree.colorOf(it.h)
}

// Left returns an iterator to the left child of the referenced node, or the
// end iterator if there is none.
func (it Iterator[T]) Left() Iterator[T] {
	if it.IsEnd() {
		return it
	}
	it.assertLive()
	return Iterator[T]{tree: it.tree, h: it.tree.leftOf(it.h)}
}

// Right returns an iterator to the right child of the referenced node, or the
// end iterator if there is none.
func (it Iterator[T]) Right() Iterator[T] {
	if it.IsEnd() {
		return it
	}
	it.assertLive()
	return Iterator[T]{tree: it.tree, h: it.tree.rightOf(it.h)}
}

// Parent returns an iterator to the parent of the referenced node, or the end
// iterator for the root.
func (it Iterator[T]) Parent() Iterator[T] {
	if it.IsEnd() {
		return it
	}
	it.assertLive()
	return Iterator[T]{tree: it.tree, h: it.tree.parentOf(it.h)}
}

// assertLive panics if the referenced node has been removed. A slot which has
// been reused since is not detected.
func (it Iterator[T]) assertLive() {
	assert(it.tree.cfg.Arena.IsLive(it.h), "rbtree: iterator references a removed node")
}

// Root returns an iterator to the root node, or the end iterator for an empty
// tree. Together with Left, Right and Parent it exposes the tree's shape,
// e.g., for visualization.
func (t *Tree[T]) Root() Iterator[T] {
	if t == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{tree: t, h: t.root}
}
