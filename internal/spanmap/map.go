// Package spanmap provides a small ordered map used to key semantic
// bindings by source span.
package spanmap

import (
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map with keys drawn from any ordered type. A zero value
// is ready to use. It is not safe for concurrent mutation; concurrent reads
// are fine once fully populated.
type Map[K constraints.Ordered, V any] struct {
	tree btree.Map[K, V]
}

// Get looks up the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	m.tree.Set(key, value)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// All returns an iterator over the entries of the map in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Scan(func(key K, value V) bool {
			return yield(key, value)
		})
	}
}
