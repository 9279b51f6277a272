package diagnostics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListAccumulatesInOrder(t *testing.T) {
	var l List
	l.Append(New(KindParseError, "first"))
	l.Append(nil)
	l.Append(New(KindNameResolutionFailure, "second"))

	got := l.Strings()
	want := []string{"first", "second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyList(t *testing.T) {
	var l List
	if !l.Empty() {
		t.Errorf("Empty() = false on a fresh list")
	}
}

func TestErrorFormatsLocation(t *testing.T) {
	e := New(KindIndexOutOfRange, "index %d out of range (size %d)", 5, 2)
	e = e.WithLocation(Single("test.qasm", 3, 5))
	want := "test.qasm:3:5: index 5 out of range (size 2)"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithLocationFirstWins(t *testing.T) {
	e := New(KindIndexOutOfRange, "oops")
	e = e.WithLocation(Single("a.qasm", 1, 1))
	e = e.WithLocation(Single("b.qasm", 2, 2))
	if e.Loc.Filename != "a.qasm" {
		t.Errorf("Loc.Filename = %q, want a.qasm (first attach wins)", e.Loc.Filename)
	}
}
