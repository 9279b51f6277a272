package ir

import (
	"testing"

	"github.com/jvanstraten/libcqasm/primitives"
)

func TestQubitRefsEquality(t *testing.T) {
	a := NewQubitRefs(0, 1, 2)
	b := NewQubitRefs(0, 1, 2)
	c := NewQubitRefs(0, 1)
	if !a.Equal(b) {
		t.Errorf("QubitRefs with identical indices should be Equal")
	}
	if a.Equal(c) {
		t.Errorf("QubitRefs with different index counts should not be Equal")
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{&ConstBool{Value: true}, "true"},
		{&ConstInt{Value: 42}, "42"},
		{&ConstString{Value: "hi"}, `"hi"`},
		{NewQubitRefs(0, 2), "qubit[0 2]"},
	}
	for _, c := range cases {
		if got := String(c.v); got != c.want {
			t.Errorf("String(%T) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestConstMatrixTypeTracksLiveDimensions(t *testing.T) {
	m, err := primitives.NewMatrixFromRows([][]float64{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	v := &ConstRealMatrix{Value: m}
	ty := v.Type().(*RealMatrixType)
	if ty.NumRows != 2 || ty.NumCols != 2 {
		t.Errorf("ConstRealMatrix.Type() dims = (%d,%d), want (2,2)", ty.NumRows, ty.NumCols)
	}
}
