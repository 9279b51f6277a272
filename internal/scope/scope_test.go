package scope

import "testing"

func TestCaseInsensitiveLookup(t *testing.T) {
	s := New[int](nil)
	s.Define("Foo", 1)
	if v, ok := s.Find("foo"); !ok || v != 1 {
		t.Errorf("Find(foo) = (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := s.Find("FOO"); !ok || v != 1 {
		t.Errorf("Find(FOO) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestShadowing(t *testing.T) {
	parent := New[int](nil)
	parent.Define("q", 1)
	child := parent.Child()
	child.Define("q", 2)

	if v, _ := child.Find("q"); v != 2 {
		t.Errorf("child Find(q) = %d, want 2", v)
	}
	if v, _ := parent.Find("q"); v != 1 {
		t.Errorf("parent Find(q) = %d, want 1 (unaffected by child shadow)", v)
	}
}

func TestIsLocal(t *testing.T) {
	parent := New[int](nil)
	parent.Define("q", 1)
	child := parent.Child()
	if child.IsLocal("q") {
		t.Errorf("IsLocal(q) on child = true, want false (only defined in parent)")
	}
	if !parent.IsLocal("q") {
		t.Errorf("IsLocal(q) on parent = false, want true")
	}
}
