package ir

import (
	"testing"

	"github.com/jvanstraten/libcqasm/primitives"
)

func TestPromoteIntToRealToComplex(t *testing.T) {
	real, err := Promote(&ConstInt{Value: 3}, Real(false))
	if err != nil {
		t.Fatalf("Promote int->real: %v", err)
	}
	if real.(*ConstReal).Value != 3.0 {
		t.Errorf("int->real promotion = %v, want 3.0", real.(*ConstReal).Value)
	}

	cplx, err := Promote(real, Complex(false))
	if err != nil {
		t.Fatalf("Promote real->complex: %v", err)
	}
	if cplx.(*ConstComplex).Value != complex(3.0, 0) {
		t.Errorf("real->complex promotion = %v, want 3+0i", cplx.(*ConstComplex).Value)
	}
}

func TestPromoteRejectsNarrowing(t *testing.T) {
	if _, err := Promote(&ConstReal{Value: 1.5}, Int(false)); err == nil {
		t.Errorf("Promote real->int should fail: reals never narrow to int")
	}
}

func TestPromoteIsAlwaysAFreshValue(t *testing.T) {
	src := &ConstInt{Value: 7}
	dst, err := Promote(src, Int(false))
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if dst == Value(src) {
		t.Errorf("Promote to the same type must still return a fresh value, not the original pointer")
	}
	if !dst.Equal(src) {
		t.Errorf("fresh promoted value should still be equal in content to the source")
	}
}

func TestPromoteWidensRealMatrixToComplexMatrix(t *testing.T) {
	m, err := primitives.NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	src := &ConstRealMatrix{Value: m}
	dst, err := Promote(src, ComplexMatrix(2, 2, false))
	if err != nil {
		t.Fatalf("Promote real_matrix->complex_matrix: %v", err)
	}
	cm := dst.(*ConstComplexMatrix).Value
	if cm.At(1, 1) != complex(1, 0) || cm.At(2, 2) != complex(4, 0) {
		t.Errorf("widened complex matrix = %v, want real parts preserved with zero imaginary parts", cm.Flat())
	}
}

func TestPromoteLegacyFlattenedUnitary(t *testing.T) {
	// A 2x2 (single-qubit) unitary flattened the legacy way is a
	// 1x(2*2^2) = 1x8 real row vector of alternating real/imaginary parts
	// (§4.3's legacy rule).
	flat, err := primitives.NewMatrixFlat(1, 8, []float64{
		1, 0, 2, 0.5,
		-1, 0, 0, 3,
	})
	if err != nil {
		t.Fatalf("building flattened row: %v", err)
	}
	src := &ConstRealMatrix{Value: flat}
	dst, err := Promote(src, ComplexMatrix(2, 2, false))
	if err != nil {
		t.Fatalf("Promote legacy flattened unitary: %v", err)
	}
	cm := dst.(*ConstComplexMatrix).Value
	want := [][]complex128{
		{complex(1, 0), complex(2, 0.5)},
		{complex(-1, 0), complex(0, 3)},
	}
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			if cm.At(r, c) != want[r-1][c-1] {
				t.Errorf("cm.At(%d,%d) = %v, want %v", r, c, cm.At(r, c), want[r-1][c-1])
			}
		}
	}
}

func TestPromoteLegacyFlattenedUnitaryRejectsWrongShape(t *testing.T) {
	flat, err := primitives.NewMatrixFlat(1, 7, make([]float64, 7))
	if err != nil {
		t.Fatalf("building flattened row: %v", err)
	}
	src := &ConstRealMatrix{Value: flat}
	if _, err := Promote(src, ComplexMatrix(2, 2, false)); err == nil {
		t.Errorf("a 1x7 row vector is not a valid flattened 2x2 unitary and should not promote")
	}
}

func TestPromoteUnsupportedProducesDiagnostic(t *testing.T) {
	_, err := Promote(&ConstString{Value: "x"}, Int(false))
	if err == nil {
		t.Fatalf("Promote string->int should fail")
	}
}
