// Package ordmap provides an insertion-ordered map, used wherever this
// repository needs both O(1) lookup and a stable, caller-controlled
// iteration order — the mapping table and the three overload tables all
// depend on that order (§4.4's "overloads are appended... later additions
// never reorder" contract).
package ordmap

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map is an ordered map: Iter and Keys walk entries in the order they were
// first stored, matching subsequent Store calls for an existing key do not
// move it.
type Map[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// New returns an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Store inserts or overwrites the value for k, preserving k's original
// position if it was already present.
func (m *Map[K, V]) Store(k K, v V) {
	if _, ok := m.m[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.m[k] = v
}

// Load returns the value stored for k, if any.
func (m *Map[K, V]) Load(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.m[k]
	return ok
}

// Delete removes k, if present.
func (m *Map[K, V]) Delete(k K) {
	if _, ok := m.m[k]; !ok {
		return
	}
	delete(m.m, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return len(m.keys)
}

// Keys iterates keys in insertion order.
func (m *Map[K, V]) Keys() func(func(K) bool) {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Iter iterates key/value pairs in insertion order.
func (m *Map[K, V]) Iter() func(func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Values iterates values in insertion order.
func (m *Map[K, V]) Values() func(func(V) bool) {
	return func(yield func(V) bool) {
		for _, k := range m.keys {
			if !yield(m.m[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy preserving order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{keys: slices.Clone(m.keys), m: maps.Clone(m.m)}
}
