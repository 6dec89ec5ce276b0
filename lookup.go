package rbtree

import "github.com/npillmayer/rbtree/arena"

// Lookup returns an iterator to the value equal to value, or the end iterator.
func (t *Tree[T]) Lookup(value T) Iterator[T] {
	if t == nil {
		return Iterator[T]{}
	}
	cur := t.root
	for cur != arena.Nil {
		n := t.node(cur)
		switch {
		case t.cfg.Less(value, n.value):
			cur = n.left
		case t.cfg.Less(n.value, value):
			cur = n.right
		default:
			return Iterator[T]{tree: t, h: cur}
		}
	}
	return t.End()
}

// Contains reports whether the tree holds a value equal to value.
func (t *Tree[T]) Contains(value T) bool {
	return !t.Lookup(value).IsEnd()
}

// Min returns an iterator to the smallest value, or the end iterator for an
// empty tree.
func (t *Tree[T]) Min() Iterator[T] {
	if t == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{tree: t, h: t.minimum(t.root)}
}

// Max returns an iterator to the largest value, or the end iterator for an
// empty tree.
func (t *Tree[T]) Max() Iterator[T] {
	if t == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{tree: t, h: t.maximum(t.root)}
}

// Ceil returns an iterator to the smallest value not less than value, or the
// end iterator if there is none.
func (t *Tree[T]) Ceil(value T) Iterator[T] {
	if t == nil {
		return Iterator[T]{}
	}
	found, cur := arena.Nil, t.root
	for cur != arena.Nil {
		n := t.node(cur)
		if t.cfg.Less(n.value, value) {
			cur = n.right
			continue
		}
		found = cur
		if !t.cfg.Less(value, n.value) {
			break // equal
		}
		cur = n.left
	}
	return Iterator[T]{tree: t, h: found}
}

// Floor returns an iterator to the largest value not greater than value, or
// the end iterator if there is none.
func (t *Tree[T]) Floor(value T) Iterator[T] {
	if t == nil {
		return Iterator[T]{}
	}
	found, cur := arena.Nil, t.root
	for cur != arena.Nil {
		n := t.node(cur)
		if t.cfg.Less(value, n.value) {
			cur = n.left
			continue
		}
		found = cur
		if !t.cfg.Less(n.value, value) {
			break
		}
		cur = n.right
	}
	return Iterator[T]{tree: t, h: found}
}
