package tree

// Maybe holds 0 or 1 element (§3.3).
type Maybe[T any] struct {
	Base
	value   T
	present bool
}

// NewMaybeEmpty constructs an empty Maybe.
func NewMaybeEmpty[T any]() Maybe[T] {
	return Maybe[T]{}
}

// NewMaybe constructs a filled Maybe.
func NewMaybe[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// IsEmpty reports whether no element is present.
func (m *Maybe[T]) IsEmpty() bool { return !m.present }

// Get returns the element, panicking if empty (§4.1 "get element (raises
// when empty for One/Maybe::get)").
func (m *Maybe[T]) Get() T {
	if !m.present {
		panic("Maybe.Get on an empty Maybe")
	}
	return m.value
}

// GetOk returns the element and whether it is present, without panicking.
func (m *Maybe[T]) GetOk() (T, bool) {
	return m.value, m.present
}

// Set assigns the element, marking the Maybe filled.
func (m *Maybe[T]) Set(v T) {
	m.value = v
	m.present = true
}

// Reset clears the element, marking the Maybe empty.
func (m *Maybe[T]) Reset() {
	var zero T
	m.value = zero
	m.present = false
}

// IsComplete is true for an empty Maybe (a valid, complete shape); a filled
// Maybe is complete iff its element is.
func (m *Maybe[T]) IsComplete() bool {
	if !m.present {
		return true
	}
	return isComplete(m.value)
}

// Equal reports structural equality, ignoring annotations.
func (m *Maybe[T]) Equal(o *Maybe[T]) bool {
	if m.present != o.present {
		return false
	}
	if !m.present {
		return true
	}
	return equal(m.value, o.value)
}

// One holds exactly 1 element once complete; it may transiently be empty
// between construction and assignment (§4.1).
type One[T any] struct {
	Base
	value T
	set   bool
}

// NewOneEmpty constructs an empty One.
func NewOneEmpty[T any]() One[T] {
	return One[T]{}
}

// NewOne constructs a filled One.
func NewOne[T any](v T) One[T] {
	return One[T]{value: v, set: true}
}

// IsSet reports whether the element has been assigned.
func (o *One[T]) IsSet() bool { return o.set }

// Get returns the element, panicking if unset.
func (o *One[T]) Get() T {
	if !o.set {
		panic("One.Get on an unset One")
	}
	return o.value
}

// Set assigns the element.
func (o *One[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Reset clears the element, marking the One unset (invalid until filled
// again).
func (o *One[T]) Reset() {
	var zero T
	o.value = zero
	o.set = false
}

// IsComplete additionally requires occupancy (§4.1).
func (o *One[T]) IsComplete() bool {
	if !o.set {
		return false
	}
	return isComplete(o.value)
}

// Equal reports structural equality, ignoring annotations. Two unset Ones
// are equal; an unset and a set One are not.
func (o *One[T]) Equal(other *One[T]) bool {
	if o.set != other.set {
		return false
	}
	if !o.set {
		return true
	}
	return equal(o.value, other.value)
}

// WrapperKind implements Wrapper.
func (m *Maybe[T]) WrapperKind() WrapperKind { return KindMaybe }

// AnyItems implements Wrapper.
func (m *Maybe[T]) AnyItems() []any {
	if !m.present {
		return nil
	}
	return []any{m.value}
}

// WrapperKind implements Wrapper.
func (o *One[T]) WrapperKind() WrapperKind { return KindOne }

// AnyItems implements Wrapper.
func (o *One[T]) AnyItems() []any {
	if !o.set {
		return nil
	}
	return []any{o.value}
}
