/*
Package rbtree implements an ordered associative container as a red-black tree.

The tree is the ordered index behind the map and set types of this module. It
stores values of any type T, ordered by an injected comparator. Keys are
unique: inserting a value which compares equal to a stored one returns the
stored one.

Red-Black Trees

A red-black tree is a binary search tree with one bit of color per node. After
every insertion or removal a fixup pass recolors nodes and rotates small
neighbourhoods of the tree until the following properties hold again:

  - the root is black,
  - a red node never has a red child,
  - every path from a node down to an absent child passes the same number of
    black nodes (the black height).

Together they bound the height of the tree to 2·log(n+1), which makes lookup,
insertion and removal O(log n).

Node Storage

Nodes live in an arena (package arena) and link to each other by handle, not
by pointer. Handle arena.Nil stands for an absent child and reads as a black
sentinel node. Several trees may share one arena. An arena may be bounded; if
it cannot hand out a node, Insert fails with ErrAllocation and leaves the tree
exactly as it was before the call.

Iterators

Lookup, Insert, Min and Max return an Iterator, a small value referencing a
single node. Iterators stay valid across insertions and across removal of
other nodes, since rebalancing only rewires links and never moves payloads.
Removing the referenced node invalidates an iterator.

A tree is not safe for concurrent mutation. Clients sharing a tree between
goroutines have to synchronize access themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is used inside generic code, where a type parameter T shadows T().
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
