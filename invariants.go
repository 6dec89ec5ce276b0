package rbtree

import (
	"fmt"

	"github.com/npillmayer/rbtree/arena"
)

// Check validates the structural invariants of the tree:
//
//   - parent and child links agree, and the root has no parent,
//   - values are in strict ascending order with respect to Less,
//   - the root is black,
//   - no red node has a red child,
//   - all paths from a node to an absent child have equal black height,
//   - the number of reachable nodes equals Len().
//
// Check is intended for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == arena.Nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrInvariant, t.count)
		}
		return nil
	}
	if !t.cfg.Arena.IsLive(t.root) {
		return fmt.Errorf("%w: root references a free slot", ErrInvariant)
	}
	if p := t.parentOf(t.root); p != arena.Nil {
		return fmt.Errorf("%w: root has parent %d", ErrInvariant, p)
	}
	if t.colorOf(t.root) != Black {
		return fmt.Errorf("%w: root is not black", ErrInvariant)
	}
	nodes, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("%w: count mismatch (%d nodes, count %d)", ErrInvariant, nodes, t.count)
	}
	return nil
}

// checkNode validates the subtree at h, whose values have to lie strictly
// between lo and hi (nil meaning unbounded). It returns the number of nodes
// and the black height of the subtree.
func (t *Tree[T]) checkNode(h arena.Handle, lo, hi *T) (nodes int, blackHeight int, err error) {
	if h == arena.Nil {
		return 0, 1, nil
	}
	if !t.cfg.Arena.IsLive(h) {
		return 0, 0, fmt.Errorf("%w: link to free slot %d", ErrInvariant, h)
	}
	n := *t.node(h)
	if lo != nil && !t.cfg.Less(*lo, n.value) {
		return 0, 0, fmt.Errorf("%w: order violated at node %d (%v not above %v)", ErrInvariant, h, n.value, *lo)
	}
	if hi != nil && !t.cfg.Less(n.value, *hi) {
		return 0, 0, fmt.Errorf("%w: order violated at node %d (%v not below %v)", ErrInvariant, h, n.value, *hi)
	}
	switch n.color {
	case Black:
	case Red:
		if t.colorOf(n.left) == Red || t.colorOf(n.right) == Red {
			return 0, 0, fmt.Errorf("%w: red node %d has a red child", ErrInvariant, h)
		}
	default:
		return 0, 0, fmt.Errorf("%w: node %d has invalid color %d", ErrInvariant, h, n.color)
	}
	for _, child := range [2]arena.Handle{n.left, n.right} {
		if child != arena.Nil && t.parentOf(child) != h {
			return 0, 0, fmt.Errorf("%w: child %d does not link back to parent %d", ErrInvariant, child, h)
		}
	}
	value := n.value
	ln, lbh, err := t.checkNode(n.left, lo, &value)
	if err != nil {
		return 0, 0, err
	}
	rn, rbh, err := t.checkNode(n.right, &value, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black height differs below node %d (%d != %d)", ErrInvariant, h, lbh, rbh)
	}
	if n.color == Black {
		rbh++
	}
	return ln + rn + 1, rbh, nil
}
