package tree

import "testing"

type leaf struct {
	Base
	v int
}

func (l *leaf) Equal(o *leaf) bool { return l.v == o.v }

func TestOneCompleteness(t *testing.T) {
	var o One[*leaf]
	if o.IsComplete() {
		t.Errorf("unset One should not be complete")
	}
	o.Set(&leaf{v: 1})
	if !o.IsComplete() {
		t.Errorf("set One should be complete")
	}
}

func TestManyCompletenessRequiresNonEmpty(t *testing.T) {
	m := NewMany[*leaf]()
	if m.IsComplete() {
		t.Errorf("empty Many should not be complete")
	}
	m.Append(&leaf{v: 1}, -1)
	if !m.IsComplete() {
		t.Errorf("non-empty Many should be complete")
	}
}

func TestAnyEmptyIsComplete(t *testing.T) {
	a := NewAny[*leaf]()
	if !a.IsComplete() {
		t.Errorf("empty Any should be complete")
	}
}

func TestMaybeEmptyIsComplete(t *testing.T) {
	var m Maybe[*leaf]
	if !m.IsComplete() {
		t.Errorf("empty Maybe should be complete")
	}
}

func TestEqualityIgnoresAnnotations(t *testing.T) {
	a := NewOne[*leaf](&leaf{v: 1})
	b := NewOne[*leaf](&leaf{v: 1})
	Set(a.NodeAnnotations(), 42)
	if !a.Equal(&b) {
		t.Errorf("expected equal One values regardless of annotations")
	}
}

func TestAnnotationsAtMostOnePerIdentity(t *testing.T) {
	var a Annotations
	Set(&a, 1)
	Set(&a, 2)
	v, ok := Get[int](&a)
	if !ok || v != 2 {
		t.Errorf("Get[int]() = (%d, %v), want (2, true)", v, ok)
	}
}

func TestAppendAtIndex(t *testing.T) {
	m := NewMany[int](1, 2, 3)
	m.Append(99, 1)
	want := []int{1, 99, 2, 3}
	got := m.Items()
	if len(got) != len(want) {
		t.Fatalf("Items() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
