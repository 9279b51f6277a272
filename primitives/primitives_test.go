package primitives

import "testing"

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"1", "1.0", 0},
		{"1.0.1", "1.0", 1},
		{"0", "0.0.0", 0},
	}
	for _, test := range tests {
		a, err := ParseVersion(test.a)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", test.a, err)
		}
		b, err := ParseVersion(test.b)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", test.b, err)
		}
		if got := a.Compare(b); got != test.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestVersionNegativeComponent(t *testing.T) {
	v, err := ParseVersion("1.-1")
	if err != nil {
		t.Fatalf("ParseVersion: %v", err)
	}
	if !v.HasNegativeComponent() {
		t.Errorf("HasNegativeComponent() = false, want true for %v", v)
	}
}

func TestParseAxis(t *testing.T) {
	for _, s := range []string{"x", "X", "y", "Y", "z", "Z"} {
		if _, err := ParseAxis(s); err != nil {
			t.Errorf("ParseAxis(%q): %v", s, err)
		}
	}
	if _, err := ParseAxis("w"); err == nil {
		t.Errorf("ParseAxis(%q): expected error", "w")
	}
}

func TestMatrixAccess(t *testing.T) {
	m, err := NewMatrixFromRows([][]int{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}
	if got := m.At(1, 1); got != 1 {
		t.Errorf("At(1,1) = %d, want 1", got)
	}
	if got := m.At(2, 2); got != 4 {
		t.Errorf("At(2,2) = %d, want 4", got)
	}
}

func TestMatrixEqual(t *testing.T) {
	a, _ := NewMatrixFromRows([][]int{{1, 2}, {3, 4}})
	b, _ := NewMatrixFromRows([][]int{{1, 2}, {3, 4}})
	c, _ := NewMatrixFromRows([][]int{{1, 2}, {3, 5}})
	eq := func(x, y int) bool { return x == y }
	if !a.Equal(b, eq) {
		t.Errorf("expected a == b")
	}
	if a.Equal(c, eq) {
		t.Errorf("expected a != c")
	}
}

func TestMatrixOutOfRangePanics(t *testing.T) {
	m := NewMatrix[int](2, 2)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on out-of-range access")
		}
	}()
	m.At(3, 1)
}
