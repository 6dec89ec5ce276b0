package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrAllocation signals that the arena could not provide a node. The tree
	// is left unchanged.
	ErrAllocation = errors.New("rbtree: node allocation failed")
	// ErrInvariant signals a violation of a structural tree invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
