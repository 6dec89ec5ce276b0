package rbtree

import (
	"fmt"

	"github.com/npillmayer/rbtree/arena"
)

// Insert adds value to the tree and returns an iterator to its node.
//
// If the tree already holds a value equal to value, Insert returns an
// iterator to that node and leaves the tree unchanged. If the arena cannot
// provide a node, Insert returns the end iterator and an error wrapping
// ErrAllocation; the tree is not modified in this case.
func (t *Tree[T]) Insert(value T) (Iterator[T], error) {
	parent, cur := arena.Nil, t.root
	asLeft := false
	for cur != arena.Nil {
		n := t.node(cur)
		switch {
		case t.cfg.Less(value, n.value):
			parent, cur, asLeft = cur, n.left, true
		case t.cfg.Less(n.value, value):
			parent, cur, asLeft = cur, n.right, false
		default:
			return Iterator[T]{tree: t, h: cur}, nil
		}
	}
	// Nothing is linked before the allocation succeeded.
	h, err := t.cfg.Arena.Alloc()
	if err != nil {
		tracer().Debugf("rbtree: insert failed with %d nodes: %v", t.count, err)
		return t.End(), fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	n := t.node(h)
	n.value = value
	n.color = Red
	n.parent = parent
	switch {
	case parent == arena.Nil:
		t.root = h
	case asLeft:
		t.node(parent).left = h
	default:
		t.node(parent).right = h
	}
	t.count++
	t.insertFixup(h)
	return Iterator[T]{tree: t, h: h}, nil
}

// insertFixup restores the color invariants after z has been linked as a red
// leaf. Only a red-red violation between z and its parent may exist.
func (t *Tree[T]) insertFixup(z arena.Handle) {
	for t.colorOf(t.parentOf(z)) == Red {
		p := t.parentOf(z)
		g := t.parentOf(p) // p is red, hence not the root
		if p == t.leftOf(g) {
			uncle := t.rightOf(g)
			if t.colorOf(uncle) == Red {
				t.setColor(p, Black)
				t.setColor(uncle, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.rightOf(p) { // inner child: reduce to the outer case
				z = p
				t.rotateLeft(z)
				p = t.parentOf(z)
			}
			t.setColor(p, Black)
			t.setColor(g, Red)
			t.rotateRight(g)
			break
		}
		uncle := t.leftOf(g)
		if t.colorOf(uncle) == Red {
			t.setColor(p, Black)
			t.setColor(uncle, Black)
			t.setColor(g, Red)
			z = g
			continue
		}
		if z == t.leftOf(p) {
			z = p
			t.rotateRight(z)
			p = t.parentOf(z)
		}
		t.setColor(p, Black)
		t.setColor(g, Red)
		t.rotateLeft(g)
		break
	}
	t.setColor(t.root, Black)
}
