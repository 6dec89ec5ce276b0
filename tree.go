package rbtree

import (
	"github.com/npillmayer/rbtree/arena"
	"golang.org/x/exp/constraints"
)

// Tree is a red-black tree holding unique values of type T.
type Tree[T any] struct {
	cfg   Config[T]
	root  arena.Handle
	count int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree for an ordered type, using Less as its
// comparator and a private arena.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	t, err := New(Config[T]{Less: Less[T]})
	assert(err == nil, "default configuration rejected")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == arena.Nil
}

// Height returns the number of nodes on the longest root-to-leaf path,
// 0 for an empty tree.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[T]) height(h arena.Handle) int {
	if h == arena.Nil {
		return 0
	}
	return 1 + max(t.height(t.leftOf(h)), t.height(t.rightOf(h)))
}

// Clear removes all values, releasing every node to the arena.
func (t *Tree[T]) Clear() {
	if t == nil || t.root == arena.Nil {
		return
	}
	tracer().Debugf("rbtree: clearing tree with %d nodes", t.count)
	t.release(t.root)
	t.root = arena.Nil
	t.count = 0
}

// release frees the subtree at h in post-order.
func (t *Tree[T]) release(h arena.Handle) {
	if h == arena.Nil {
		return
	}
	l, r := t.leftOf(h), t.rightOf(h)
	t.release(l)
	t.release(r)
	t.cfg.Arena.Free(h)
}

// End returns the end iterator of the tree. It references no node.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t, h: arena.Nil}
}
