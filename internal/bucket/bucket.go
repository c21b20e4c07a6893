// Package bucket provides an ordered map keyed by integer scanline,
// the "supporting container" the segment approximator buckets segments
// into. The reference engine keeps this in a balanced tree; a sorted
// slice of (key, values) pairs gives ordered iteration and O(log n)
// lookup without pulling in a tree package, and keeps every bucket's
// segment list contiguous in memory. Inserting a new key shifts the
// later entries, so it costs O(n).
package bucket

import "sort"

// Map is an ordered map from an int64 scanline key to a slice of values
// accumulated at that key. Keys are visited in ascending order by Keys
// and Range.
type Map[V any] struct {
	keys   []int64
	values [][]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

func (m *Map[V]) search(key int64) int {
	return sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= key })
}

// Ensure guarantees a bucket exists for key, creating an empty one if
// necessary, and returns its index.
func (m *Map[V]) Ensure(key int64) int {
	i := m.search(key)
	if i < len(m.keys) && m.keys[i] == key {
		return i
	}
	m.keys = append(m.keys, 0)
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key

	m.values = append(m.values, nil)
	copy(m.values[i+1:], m.values[i:])
	m.values[i] = nil
	return i
}

// Push appends v to the bucket for key, creating the bucket if absent.
func (m *Map[V]) Push(key int64, v V) {
	i := m.Ensure(key)
	m.values[i] = append(m.values[i], v)
}

// At returns the bucket's values by slice index (as returned by Ensure
// or KeyAt), not by key.
func (m *Map[V]) At(index int) []V {
	return m.values[index]
}

// SetAt replaces the bucket's values by slice index.
func (m *Map[V]) SetAt(index int, v []V) {
	m.values[index] = v
}

// IndexOf returns the slice index for key and whether it exists, for
// callers that want to follow up with At/SetAt.
func (m *Map[V]) IndexOf(key int64) (int, bool) {
	i := m.search(key)
	if i < len(m.keys) && m.keys[i] == key {
		return i, true
	}
	return 0, false
}

// Get returns the bucket for key and whether it exists.
func (m *Map[V]) Get(key int64) ([]V, bool) {
	i := m.search(key)
	if i < len(m.keys) && m.keys[i] == key {
		return m.values[i], true
	}
	return nil, false
}

// KeyAt returns the key at slice index i.
func (m *Map[V]) KeyAt(i int) int64 {
	return m.keys[i]
}

// Len returns the number of distinct keys.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Keys returns the ascending-sorted keys. The returned slice must not be
// mutated by the caller.
func (m *Map[V]) Keys() []int64 {
	return m.keys
}

// Range calls fn for every (key, values) pair in ascending key order.
func (m *Map[V]) Range(fn func(key int64, values []V)) {
	for i, k := range m.keys {
		fn(k, m.values[i])
	}
}
