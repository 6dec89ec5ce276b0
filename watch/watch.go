/*
Package watch publishes changes of an ordered map to subscribers.

Mutations happen synchronously on the caller's goroutine, exactly as with an
omap.Map. After each successful mutation an Event is broadcast; delivery to
subscribers is asynchronous and preserves the order of mutations.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"context"
	"errors"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbtree/omap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

// ErrClosed signals that a watched map has been closed.
var ErrClosed = errors.New("watch: map is closed")

// Op is the kind of a change.
type Op int

const (
	OpInsert Op = iota + 1 // a new key has been inserted
	OpUpdate               // the value of an existing key has been replaced
	OpDelete               // a key has been removed
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Event describes a single change. For OpDelete, Value is the value the key
// held before removal.
type Event[K, V any] struct {
	Op    Op
	Key   K
	Value V
}

// Map wraps an ordered map and broadcasts its changes.
type Map[K, V any] struct {
	m    *omap.Map[K, V]
	cast *caster.Caster // broadcaster for change events
}

// New wraps m. Changes made to m directly, bypassing the wrapper, are not
// published.
func New[K, V any](m *omap.Map[K, V]) *Map[K, V] {
	return &Map[K, V]{
		m:    m,
		cast: caster.New(context.Background()),
	}
}

// Map returns the wrapped map for read access.
func (w *Map[K, V]) Map() *omap.Map[K, V] {
	return w.m
}

// Len returns the number of entries.
func (w *Map[K, V]) Len() int {
	return w.m.Len()
}

// Get returns the value for key.
func (w *Map[K, V]) Get(key K) (V, bool) {
	return w.m.Get(key)
}

// Put sets the value for key and publishes an OpInsert or OpUpdate event.
func (w *Map[K, V]) Put(key K, value V) error {
	inserted, err := w.m.Upsert(key, value)
	if err != nil {
		return err
	}
	op := OpUpdate
	if inserted {
		op = OpInsert
	}
	w.publish(Event[K, V]{Op: op, Key: key, Value: value})
	return nil
}

// Delete removes key and publishes an OpDelete event if it has been present.
func (w *Map[K, V]) Delete(key K) bool {
	value, found := w.m.Get(key)
	if !found {
		return false
	}
	w.m.Delete(key)
	w.publish(Event[K, V]{Op: OpDelete, Key: key, Value: value})
	return true
}

func (w *Map[K, V]) publish(e Event[K, V]) {
	if !w.cast.Pub(e) {
		tracer().Debugf("watch: dropped %s event, broadcaster closed", e.Op)
	}
}

// Subscribe returns a channel receiving all events published after the call.
// The channel is closed when ctx is done or the map is closed. capacity is
// the buffer size of the subscription; a full buffer delays mutations.
func (w *Map[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan Event[K, V], error) {
	select {
	case <-w.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, ok := w.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan Event[K, V], capacity)
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				select {
				case out <- msg.(Event[K, V]):
				case <-ctx.Done():
					go drain(sub)
					return
				}
			case <-ctx.Done():
				go drain(sub)
				return
			}
		}
	}()
	return out, nil
}

// drain keeps the broadcaster from blocking on an abandoned subscription
// until it closes the subscription itself.
func drain(sub <-chan interface{}) {
	for range sub {
	}
}

// Close stops broadcasting and closes all subscriptions. The map itself stays
// usable; further changes are no longer published.
func (w *Map[K, V]) Close() {
	w.cast.Close()
}
