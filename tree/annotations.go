// Package tree provides the generic container algebra shared by the
// syntactic and semantic trees: the cardinality wrappers Maybe/One/Any/Many
// (§4.1) and the annotation store (§4.2). Every node in both trees embeds
// Base, which supplies the annotation store uniformly.
package tree

import (
	"reflect"

	"github.com/jvanstraten/libcqasm/diagnostics"
)

// Annotations is a mapping from a value's runtime type to a single owned
// value of that type, per §4.2 ("Identity is the runtime-observable type of
// the stored value... at most one annotation per identity per node").
// Grounded on the teacher's build/ir/annotation.go, adapted from a
// string-keyed association list to a type-keyed map.
type Annotations struct {
	byType map[reflect.Type]any
}

// Set stores v, replacing any existing annotation of the same runtime type.
func Set[T any](a *Annotations, v T) {
	if a.byType == nil {
		a.byType = make(map[reflect.Type]any)
	}
	a.byType[reflect.TypeOf(v)] = v
}

// Has reports whether an annotation of type T is present.
func Has[T any](a *Annotations) bool {
	_, ok := Get[T](a)
	return ok
}

// Get returns the annotation of type T, if any.
func Get[T any](a *Annotations) (T, bool) {
	var zero T
	if a.byType == nil {
		return zero, false
	}
	v, ok := a.byType[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Clone returns a copy of a whose entries are independent of a's (the
// per-annotation values themselves are copied by assignment, matching
// §3.5's "Copy semantics: when a node is cloned, the annotation store is
// cloned element-wise").
func (a *Annotations) Clone() Annotations {
	if a.byType == nil {
		return Annotations{}
	}
	out := make(map[reflect.Type]any, len(a.byType))
	for k, v := range a.byType {
		out[k] = v
	}
	return Annotations{byType: out}
}

// Node is implemented by every node in both trees (and by the cardinality
// wrappers themselves, per §4.1's "wrappers are themselves nodes").
type Node interface {
	// NodeAnnotations returns the node's annotation store, for direct
	// inspection by the dumper and by host code.
	NodeAnnotations() *Annotations
	// Location returns the node's source-location annotation, if any.
	Location() diagnostics.Location
}

// Base is embedded by every concrete node type to supply Node.
type Base struct {
	anns Annotations
}

// NodeAnnotations implements Node.
func (b *Base) NodeAnnotations() *Annotations {
	return &b.anns
}

// CloneBase returns a Base whose annotation store is an element-wise copy
// of b's.
func (b *Base) CloneBase() Base {
	return Base{anns: b.anns.Clone()}
}

// Completable is implemented by node kinds that participate in
// is_complete() (§3.1 "is_complete() recurses through children").
type Completable interface {
	IsComplete() bool
}

// isComplete reports v.IsComplete() if v implements Completable, and true
// otherwise (so wrappers over plain leaf types never force incompleteness).
func isComplete(v any) bool {
	if c, ok := v.(Completable); ok {
		return c.IsComplete()
	}
	return true
}

// Equatable is implemented by node kinds that participate in structural
// equality (§3.3 "All wrappers participate in structural equality
// (annotations ignored)").
type Equatable[T any] interface {
	Equal(T) bool
}

func equal[T any](a, b T) bool {
	ea, ok := any(a).(Equatable[T])
	if !ok {
		return any(a) == any(b)
	}
	return ea.Equal(b)
}
