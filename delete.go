package rbtree

import "github.com/npillmayer/rbtree/arena"

// Remove deletes the node referenced by it. Removing the end iterator is a
// no-op.
//
// If the node has two children, its in-order successor is relinked into its
// position. Iterators to any node other than the removed one stay valid and
// keep their value; it itself becomes invalid.
func (t *Tree[T]) Remove(it Iterator[T]) {
	if it.h == arena.Nil {
		return
	}
	assert(it.tree == t, "rbtree: iterator belongs to a different tree")
	assert(t.cfg.Arena.IsLive(it.h), "rbtree: iterator references a removed node")
	z := it.h
	removedColor := t.colorOf(z)
	var x, xParent arena.Handle // x may be the sentinel; xParent tracks its parent
	switch zl, zr := t.leftOf(z), t.rightOf(z); {
	case zl == arena.Nil:
		x, xParent = zr, t.parentOf(z)
		t.transplant(z, zr)
	case zr == arena.Nil:
		x, xParent = zl, t.parentOf(z)
		t.transplant(z, zl)
	default:
		y := t.minimum(zr)
		removedColor = t.colorOf(y)
		x = t.rightOf(y)
		if t.parentOf(y) == z {
			xParent = y
		} else {
			xParent = t.parentOf(y)
			t.transplant(y, x)
			t.node(y).right = zr
			t.node(zr).parent = y
		}
		t.transplant(z, y)
		yn := t.node(y)
		yn.left = zl
		t.node(zl).parent = y
		yn.color = t.colorOf(z)
	}
	if removedColor == Black {
		t.deleteFixup(x, xParent)
	}
	t.cfg.Arena.Free(z)
	t.count--
}

// RemoveValue deletes the value equal to value, if present, and reports
// whether a value has been removed.
func (t *Tree[T]) RemoveValue(value T) bool {
	it := t.Lookup(value)
	if it.IsEnd() {
		return false
	}
	t.Remove(it)
	return true
}

// transplant replaces the subtree at u by the subtree at v.
func (t *Tree[T]) transplant(u, v arena.Handle) {
	up := t.parentOf(u)
	t.replaceChild(up, u, v)
	if v != arena.Nil {
		t.node(v).parent = up
	}
}

// deleteFixup restores the black height after a black node has been removed
// above x. x carries an extra black; parent is the parent of x, which is
// needed explicitly because x may be the sentinel.
func (t *Tree[T]) deleteFixup(x, parent arena.Handle) {
	for x != t.root && t.colorOf(x) == Black {
		if x == t.leftOf(parent) {
			w := t.rightOf(parent)
			if t.colorOf(w) == Red { // case 1
				t.setColor(w, Black)
				t.setColor(parent, Red)
				t.rotateLeft(parent)
				w = t.rightOf(parent)
			}
			assert(w != arena.Nil, "deleteFixup: deficient node without sibling")
			if t.colorOf(t.leftOf(w)) == Black && t.colorOf(t.rightOf(w)) == Black { // case 2
				t.setColor(w, Red)
				x, parent = parent, t.parentOf(parent)
				continue
			}
			if t.colorOf(t.rightOf(w)) == Black { // case 3
				t.setColor(t.leftOf(w), Black)
				t.setColor(w, Red)
				t.rotateRight(w)
				w = t.rightOf(parent)
			}
			t.setColor(w, t.colorOf(parent)) // case 4
			t.setColor(parent, Black)
			t.setColor(t.rightOf(w), Black)
			t.rotateLeft(parent)
			x = t.root
			break
		}
		w := t.leftOf(parent)
		if t.colorOf(w) == Red {
			t.setColor(w, Black)
			t.setColor(parent, Red)
			t.rotateRight(parent)
			w = t.leftOf(parent)
		}
		assert(w != arena.Nil, "deleteFixup: deficient node without sibling")
		if t.colorOf(t.leftOf(w)) == Black && t.colorOf(t.rightOf(w)) == Black {
			t.setColor(w, Red)
			x, parent = parent, t.parentOf(parent)
			continue
		}
		if t.colorOf(t.leftOf(w)) == Black {
			t.setColor(t.rightOf(w), Black)
			t.setColor(w, Red)
			t.rotateLeft(w)
			w = t.leftOf(parent)
		}
		t.setColor(w, t.colorOf(parent))
		t.setColor(parent, Black)
		t.setColor(t.leftOf(w), Black)
		t.rotateRight(parent)
		x = t.root
		break
	}
	if x != arena.Nil {
		t.setColor(x, Black)
	}
}
