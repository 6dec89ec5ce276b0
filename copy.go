package rbtree

import "github.com/npillmayer/rbtree/arena"

// Clone creates a structurally independent copy of t.
//
// The copy shares configuration and arena with t and is built by inserting
// the values of t in pre-order. Its shape may therefore differ from the shape
// of t. If the arena runs out of nodes, Clone releases the partial copy and
// returns an error wrapping ErrAllocation.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	c := &Tree[T]{cfg: t.cfg}
	var err error
	t.PreOrder(func(value T, _ any) bool {
		_, err = c.Insert(value)
		return err == nil
	}, nil)
	if err != nil {
		tracer().Debugf("rbtree: clone aborted after %d of %d values", c.count, t.count)
		c.Clear()
		return nil, err
	}
	return c, nil
}

// Move transfers the content of t to a new tree in O(1) and leaves t empty.
//
// Iterators into t become invalid; t itself remains usable.
func (t *Tree[T]) Move() *Tree[T] {
	moved := &Tree[T]{cfg: t.cfg, root: t.root, count: t.count}
	t.root = arena.Nil
	t.count = 0
	return moved
}

// FromValues creates a tree and inserts values one by one. Duplicates are
// dropped. On error, the partially built tree is released.
func FromValues[T any](cfg Config[T], values ...T) (*Tree[T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if _, err = t.Insert(v); err != nil {
			t.Clear()
			return nil, err
		}
	}
	return t, nil
}
