/*
Package omap implements an ordered map on top of a red-black tree.

A Map stores (key, value) entries ordered by key. It reuses rbtree.Tree
unchanged, with a comparator which looks at keys only.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package omap

import (
	"iter"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/rbtree/arena"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

// Entry is a key/value pair stored in a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is a map from K to V, ordered by K.
type Map[K, V any] struct {
	tree *rbtree.Tree[Entry[K, V]]
}

// NewArena creates an arena for entries of maps from K to V. See
// rbtree.NewArena.
func NewArena[K, V any](limit int) *arena.Arena[rbtree.Node[Entry[K, V]]] {
	return rbtree.NewArena[Entry[K, V]](limit)
}

// New creates an empty map ordered by less. If a is nil, the map uses a
// private arena.
func New[K, V any](less rbtree.LessFunc[K], a *arena.Arena[rbtree.Node[Entry[K, V]]]) (*Map[K, V], error) {
	var cmp rbtree.LessFunc[Entry[K, V]]
	if less != nil {
		cmp = func(x, y Entry[K, V]) bool { return less(x.Key, y.Key) }
	}
	tree, err := rbtree.New(rbtree.Config[Entry[K, V]]{Less: cmp, Arena: a})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrdered creates an empty map for an ordered key type.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	m, err := New[K, V](rbtree.Less[K], nil)
	if err != nil {
		panic(err) // cannot happen: comparator is set
	}
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Put sets the value for key, inserting a new entry if key is absent.
// If the arena cannot provide a node, Put returns an error and the map is
// unchanged.
func (m *Map[K, V]) Put(key K, value V) error {
	_, err := m.Upsert(key, value)
	return err
}

// Upsert sets the value for key and reports whether a new entry has been
// inserted (as opposed to an existing one updated).
func (m *Map[K, V]) Upsert(key K, value V) (inserted bool, err error) {
	n := m.tree.Len()
	it, err := m.tree.Insert(Entry[K, V]{Key: key, Value: value})
	if err != nil {
		tracer().Debugf("omap: put failed: %v", err)
		return false, err
	}
	if m.tree.Len() > n {
		return true, nil
	}
	it.Ref().Value = value // key compares equal, ordering is unaffected
	return false, nil
}

// Get returns the value for key.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	it := m.lookup(key)
	if it.IsEnd() {
		return value, false
	}
	return it.Value().Value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return !m.lookup(key).IsEnd()
}

// Delete removes the entry for key and reports whether it has been present.
func (m *Map[K, V]) Delete(key K) bool {
	it := m.lookup(key)
	if it.IsEnd() {
		return false
	}
	m.tree.Remove(it)
	return true
}

func (m *Map[K, V]) lookup(key K) rbtree.Iterator[Entry[K, V]] {
	return m.tree.Lookup(Entry[K, V]{Key: key})
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (entry Entry[K, V], found bool) {
	return entryAt(m.tree.Min())
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (entry Entry[K, V], found bool) {
	return entryAt(m.tree.Max())
}

func entryAt[K, V any](it rbtree.Iterator[Entry[K, V]]) (entry Entry[K, V], found bool) {
	if it.IsEnd() {
		return entry, false
	}
	return it.Value(), true
}

// Ascend calls fn for all entries with keys not less than from, in ascending
// key order, until fn returns false.
func (m *Map[K, V]) Ascend(from K, fn func(key K, value V) bool) {
	for it := m.tree.Ceil(Entry[K, V]{Key: from}); !it.IsEnd(); it = it.Next() {
		e := it.Value()
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Clone returns an independent copy of m sharing its arena.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	tree, err := m.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Check validates the invariants of the underlying tree.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Tree exposes the underlying tree, e.g., for visualization.
func (m *Map[K, V]) Tree() *rbtree.Tree[Entry[K, V]] {
	return m.tree
}
