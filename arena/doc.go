/*
Package arena provides index-addressed storage for tree nodes.

Nodes of a linked structure with parent pointers form cycles. Instead of
pointers, an arena hands out small integer handles into a growable slice of
slots. Links between nodes are handles, too, which keeps rewiring O(1) and keeps
the garbage collector out of the node graph.

Slot 0 is reserved and never handed out. Its handle, Nil, serves as the
"absent" link and may be read like any other slot: it always holds the zero
value of the element type. Clients use this to model sentinel nodes.

Freed slots are kept on a free list and are reused before the slice grows.
An arena may be bounded by a limit on live slots; allocation beyond the
limit fails with ErrExhausted and leaves the arena unchanged.

An arena is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
