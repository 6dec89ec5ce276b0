package rbtree

import "github.com/npillmayer/rbtree/arena"

// Color is the color tag of a tree node.
type Color uint8

const (
	// Black is the zero value, so the reserved arena slot reads as a black
	// sentinel node.
	Black Color = iota
	// Red marks nodes which may not have red children.
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return "invalid"
}

// Node is the storage unit of a tree: a payload, a color and three links.
//
// Nodes are owned by the tree which allocated them; clients see them only as
// slots of an arena.
type Node[T any] struct {
	value  T
	color  Color
	parent arena.Handle
	left   arena.Handle
	right  arena.Handle
}

// node returns the address of the node for h. The address must not be held
// across an allocation.
func (t *Tree[T]) node(h arena.Handle) *Node[T] {
	return t.cfg.Arena.At(h)
}

// colorOf treats absent nodes as black.
func (t *Tree[T]) colorOf(h arena.Handle) Color {
	if h == arena.Nil {
		return Black
	}
	return t.node(h).color
}

func (t *Tree[T]) setColor(h arena.Handle, c Color) {
	assert(h != arena.Nil, "attempt to recolor the sentinel")
	t.node(h).color = c
}

func (t *Tree[T]) parentOf(h arena.Handle) arena.Handle {
	if h == arena.Nil {
		return arena.Nil
	}
	return t.node(h).parent
}

func (t *Tree[T]) leftOf(h arena.Handle) arena.Handle {
	return t.node(h).left
}

func (t *Tree[T]) rightOf(h arena.Handle) arena.Handle {
	return t.node(h).right
}

// replaceChild makes child take the place of old below parent, or the place
// of the root if parent is Nil. It does not touch child's parent link.
func (t *Tree[T]) replaceChild(parent, old, child arena.Handle) {
	if parent == arena.Nil {
		t.root = child
		return
	}
	p := t.node(parent)
	if p.left == old {
		p.left = child
	} else {
		assert(p.right == old, "replaceChild: old is not a child of parent")
		p.right = child
	}
}

// rotateLeft turns the right child y of x into the parent of x.
//
//	    X                Y
//	  A   Y    =>      X   C
//	     B C          A B
func (t *Tree[T]) rotateLeft(x arena.Handle) {
	xn := t.node(x)
	y := xn.right
	assert(y != arena.Nil, "rotateLeft requires a right child")
	yn := t.node(y)
	xn.right = yn.left
	if yn.left != arena.Nil {
		t.node(yn.left).parent = x
	}
	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

// rotateRight turns the left child y of x into the parent of x.
//
//	      X            Y
//	    Y   C  =>    A   X
//	   A B              B C
func (t *Tree[T]) rotateRight(x arena.Handle) {
	xn := t.node(x)
	y := xn.left
	assert(y != arena.Nil, "rotateRight requires a left child")
	yn := t.node(y)
	xn.left = yn.right
	if yn.right != arena.Nil {
		t.node(yn.right).parent = x
	}
	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// minimum returns the leftmost node below h.
func (t *Tree[T]) minimum(h arena.Handle) arena.Handle {
	if h == arena.Nil {
		return h
	}
	for l := t.leftOf(h); l != arena.Nil; l = t.leftOf(h) {
		h = l
	}
	return h
}

// maximum returns the rightmost node below h.
func (t *Tree[T]) maximum(h arena.Handle) arena.Handle {
	if h == arena.Nil {
		return h
	}
	for r := t.rightOf(h); r != arena.Nil; r = t.rightOf(h) {
		h = r
	}
	return h
}

// successor returns the in-order successor of h, or Nil.
func (t *Tree[T]) successor(h arena.Handle) arena.Handle {
	if r := t.rightOf(h); r != arena.Nil {
		return t.minimum(r)
	}
	p := t.parentOf(h)
	for p != arena.Nil && h == t.rightOf(p) {
		h, p = p, t.parentOf(p)
	}
	return p
}

// predecessor returns the in-order predecessor of h, or Nil.
func (t *Tree[T]) predecessor(h arena.Handle) arena.Handle {
	if l := t.leftOf(h); l != arena.Nil {
		return t.maximum(l)
	}
	p := t.parentOf(h)
	for p != arena.Nil && h == t.leftOf(p) {
		h, p = p, t.parentOf(p)
	}
	return p
}
