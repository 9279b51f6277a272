package tree

// WrapperKind identifies the cardinality shape of a wrapper, used by the
// dumper (§4.6) to render every wrapper uniformly without per-instantiation
// type switches.
type WrapperKind int

const (
	// KindOne is the One[T] shape: exactly one element once complete.
	KindOne WrapperKind = iota
	// KindMaybe is the Maybe[T] shape: zero or one element.
	KindMaybe
	// KindAnyList is the Any[T] shape: zero or more elements.
	KindAnyList
	// KindManyList is the Many[T] shape: one or more elements.
	KindManyList
)

// Wrapper is implemented by every instantiation of One/Maybe/Any/Many,
// letting the dumper walk a tree generically (§4.1 "this lets the dumper
// and visitor treat children uniformly").
type Wrapper interface {
	Node
	// WrapperKind reports the cardinality shape.
	WrapperKind() WrapperKind
	// AnyItems returns the wrapped elements, boxed as any, in order. A
	// One/Maybe yields 0 or 1 elements; an Any/Many yields all of them.
	AnyItems() []any
}

// Any holds 0..n elements (§3.3).
type Any[T any] struct {
	Base
	items []T
}

// NewAny constructs an Any from zero or more elements.
func NewAny[T any](items ...T) Any[T] {
	out := Any[T]{}
	out.items = append(out.items, items...)
	return out
}

// Len returns the number of elements.
func (a *Any[T]) Len() int { return len(a.items) }

// IsEmpty reports whether there are no elements.
func (a *Any[T]) IsEmpty() bool { return len(a.items) == 0 }

// At returns the element at i (0-based).
func (a *Any[T]) At(i int) T { return a.items[i] }

// Items returns the elements in order. Callers must not mutate the
// returned slice.
func (a *Any[T]) Items() []T { return a.items }

// Append inserts v. A non-negative at inserts before index at; a negative
// at (the default, "back") appends to the end (§4.1).
func (a *Any[T]) Append(v T, at int) {
	if at < 0 || at >= len(a.items) {
		a.items = append(a.items, v)
		return
	}
	a.items = append(a.items, v)
	copy(a.items[at+1:], a.items[at:len(a.items)-1])
	a.items[at] = v
}

// RemoveAt deletes the element at index i (0-based).
func (a *Any[T]) RemoveAt(i int) {
	a.items = append(a.items[:i], a.items[i+1:]...)
}

// IsComplete is always true at the Any level itself; it still requires
// every contained element to be complete.
func (a *Any[T]) IsComplete() bool {
	for _, v := range a.items {
		if !isComplete(v) {
			return false
		}
	}
	return true
}

// Equal reports structural equality, ignoring annotations.
func (a *Any[T]) Equal(o *Any[T]) bool {
	if len(a.items) != len(o.items) {
		return false
	}
	for i := range a.items {
		if !equal(a.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

// Many holds 1..n elements (§3.3).
type Many[T any] struct {
	Base
	items []T
}

// NewMany constructs a Many from one or more elements. Constructing an
// empty Many is allowed (it is simply incomplete until populated), matching
// the "construct-empty" operation required of every wrapper by §4.1.
func NewMany[T any](items ...T) Many[T] {
	out := Many[T]{}
	out.items = append(out.items, items...)
	return out
}

// Len returns the number of elements.
func (m *Many[T]) Len() int { return len(m.items) }

// IsEmpty reports whether there are no elements.
func (m *Many[T]) IsEmpty() bool { return len(m.items) == 0 }

// At returns the element at i (0-based).
func (m *Many[T]) At(i int) T { return m.items[i] }

// Items returns the elements in order. Callers must not mutate the
// returned slice.
func (m *Many[T]) Items() []T { return m.items }

// Append inserts v. A non-negative at inserts before index at; a negative
// at appends to the end (§4.1).
func (m *Many[T]) Append(v T, at int) {
	if at < 0 || at >= len(m.items) {
		m.items = append(m.items, v)
		return
	}
	m.items = append(m.items, v)
	copy(m.items[at+1:], m.items[at:len(m.items)-1])
	m.items[at] = v
}

// RemoveAt deletes the element at index i (0-based).
func (m *Many[T]) RemoveAt(i int) {
	m.items = append(m.items[:i], m.items[i+1:]...)
}

// IsComplete additionally requires non-emptiness (§4.1).
func (m *Many[T]) IsComplete() bool {
	if len(m.items) == 0 {
		return false
	}
	for _, v := range m.items {
		if !isComplete(v) {
			return false
		}
	}
	return true
}

// Equal reports structural equality, ignoring annotations.
func (m *Many[T]) Equal(o *Many[T]) bool {
	if len(m.items) != len(o.items) {
		return false
	}
	for i := range m.items {
		if !equal(m.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

// WrapperKind implements Wrapper.
func (a *Any[T]) WrapperKind() WrapperKind { return KindAnyList }

// AnyItems implements Wrapper.
func (a *Any[T]) AnyItems() []any {
	out := make([]any, len(a.items))
	for i, v := range a.items {
		out[i] = v
	}
	return out
}

// WrapperKind implements Wrapper.
func (m *Many[T]) WrapperKind() WrapperKind { return KindManyList }

// AnyItems implements Wrapper.
func (m *Many[T]) AnyItems() []any {
	out := make([]any, len(m.items))
	for i, v := range m.items {
		out[i] = v
	}
	return out
}
