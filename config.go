package rbtree

import (
	"fmt"

	"github.com/npillmayer/rbtree/arena"
	"golang.org/x/exp/constraints"
)

// LessFunc reports whether a sorts before b.
//
// It must provide a strict weak ordering. If !less(a, b) && !less(b, a), a and
// b are treated as equal, i.e. the tree holds only one of them.
type LessFunc[T any] func(a, b T) bool

// Less is the default comparator for ordered types.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// NewArena creates an arena for nodes of trees over T. A limit > 0 bounds the
// number of nodes live at the same time, across all trees sharing the arena.
func NewArena[T any](limit int) *arena.Arena[Node[T]] {
	return arena.New[Node[T]](limit)
}

// Config configures a red-black tree.
type Config[T any] struct {
	// Less orders the values of the tree. Required.
	Less LessFunc[T]
	// Arena provides node storage. If nil, the tree allocates a private,
	// unbounded arena.
	Arena *arena.Arena[Node[T]]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Arena == nil {
		cfg.Arena = NewArena[T](0)
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
