// Package scope provides a generic, case-insensitive, parent-chained
// namespace. It is the substrate for the mapping table (§"Mapping table"):
// a mapping's alias is visible for the remainder of the analysis, later
// mappings may shadow earlier ones, and lookup always folds case.
package scope

import (
	"github.com/jvanstraten/libcqasm/internal/cistring"
	"github.com/jvanstraten/libcqasm/internal/ordmap"
)

// Scope holds name -> value bindings, case-insensitively, with an optional
// parent scope consulted on lookup miss.
type Scope[V any] struct {
	parent *Scope[V]
	data   *ordmap.Map[string, V]
}

// New returns an empty scope with the given optional parent.
func New[V any](parent *Scope[V]) *Scope[V] {
	return &Scope[V]{parent: parent, data: ordmap.New[string, V]()}
}

// Define binds name to value in this scope, overwriting any existing local
// binding but never touching the parent. Shadowing across scopes is
// allowed: a Define here hides, but does not remove, a parent binding.
func (s *Scope[V]) Define(name string, value V) {
	s.data.Store(cistring.Fold(name), value)
}

// Find looks up name in this scope, then its ancestors.
func (s *Scope[V]) Find(name string) (V, bool) {
	key := cistring.Fold(name)
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.data.Load(key); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// IsLocal reports whether name is bound directly in this scope, ignoring
// ancestors.
func (s *Scope[V]) IsLocal(name string) bool {
	return s.data.Has(cistring.Fold(name))
}

// Child returns a new scope nested under s.
func (s *Scope[V]) Child() *Scope[V] {
	return New(s)
}
