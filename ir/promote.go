package ir

import (
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/primitives"
)

// Promote coerces value to target, returning a freshly constructed value
// (§4.3): promotion to the same type still produces a fresh value so
// callers can freely take ownership, and the source-location annotation is
// always copied from source to result. UnsupportedPromotion is returned
// when no rule in the table applies — this is the sole failure mode;
// §9's "early promote implementation... falls through the switch" bug is
// explicitly not reproduced: every successful branch below returns
// immediately.
func Promote(value Value, target Type) (Value, error) {
	loc := locationOf(value)
	switch t := target.(type) {
	case *QubitType:
		if v, ok := value.(*QubitRefs); ok {
			return withLocation(cloneQubitRefs(v), loc), nil
		}
	case *BoolType:
		switch v := value.(type) {
		case *BitRefs:
			return withLocation(cloneBitRefs(v), loc), nil
		case *ConstBool:
			return withLocation(&ConstBool{Value: v.Value}, loc), nil
		}
	case *AxisType:
		if v, ok := value.(*ConstAxis); ok {
			return withLocation(&ConstAxis{Value: v.Value}, loc), nil
		}
	case *IntType:
		if v, ok := value.(*ConstInt); ok {
			return withLocation(&ConstInt{Value: v.Value}, loc), nil
		}
	case *RealType:
		switch v := value.(type) {
		case *ConstInt:
			return withLocation(&ConstReal{Value: float64(v.Value)}, loc), nil
		case *ConstReal:
			return withLocation(&ConstReal{Value: v.Value}, loc), nil
		}
	case *ComplexType:
		switch v := value.(type) {
		case *ConstInt:
			return withLocation(&ConstComplex{Value: complex(float64(v.Value), 0)}, loc), nil
		case *ConstReal:
			return withLocation(&ConstComplex{Value: complex(v.Value, 0)}, loc), nil
		case *ConstComplex:
			return withLocation(&ConstComplex{Value: v.Value}, loc), nil
		}
	case *StringType:
		if v, ok := value.(*ConstString); ok {
			return withLocation(&ConstString{Value: v.Value}, loc), nil
		}
	case *JsonType:
		if v, ok := value.(*ConstJson); ok {
			return withLocation(&ConstJson{Value: v.Value}, loc), nil
		}
	case *RealMatrixType:
		if v, ok := value.(*ConstRealMatrix); ok {
			if matrixDimsEqual(t.NumRows, v.Value.NumRows()) && matrixDimsEqual(t.NumCols, v.Value.NumCols()) {
				return withLocation(&ConstRealMatrix{Value: cloneMatrix(v.Value)}, loc), nil
			}
		}
	case *ComplexMatrixType:
		if result, ok := promoteToComplexMatrix(value, t); ok {
			return withLocation(result, loc), nil
		}
	}
	return nil, diagnostics.New(diagnostics.KindUnsupportedPromotion,
		"cannot promote a value of type %s to %s", value.Type().String(), target.String())
}

func promoteToComplexMatrix(value Value, t *ComplexMatrixType) (*ConstComplexMatrix, bool) {
	switch v := value.(type) {
	case *ConstComplexMatrix:
		if matrixDimsEqual(t.NumRows, v.Value.NumRows()) && matrixDimsEqual(t.NumCols, v.Value.NumCols()) {
			return &ConstComplexMatrix{Value: cloneMatrix(v.Value)}, true
		}
	case *ConstRealMatrix:
		if matrixDimsEqual(t.NumRows, v.Value.NumRows()) && matrixDimsEqual(t.NumCols, v.Value.NumCols()) {
			widened := primitives.MapMatrix(v.Value, func(x float64) complex128 { return complex(x, 0) })
			return &ConstComplexMatrix{Value: widened}, true
		}
		if legacy, ok := legacyFlattenedUnitary(v.Value, t); ok {
			return &ConstComplexMatrix{Value: legacy}, true
		}
	}
	return nil, false
}

// legacyFlattenedUnitary implements §4.3's legacy rule: if target is
// square with dim n>0 and source is a 1x(2*n^2) real matrix, interpret it
// row-major as alternating real/imag of an n x n complex matrix.
func legacyFlattenedUnitary(src *primitives.Matrix[float64], t *ComplexMatrixType) (*primitives.Matrix[complex128], bool) {
	if t.NumRows <= 0 || t.NumCols <= 0 || t.NumRows != t.NumCols {
		return nil, false
	}
	n := t.NumRows
	wantCols := 2 * n * n
	if src.NumRows() != 1 || src.NumCols() != wantCols {
		return nil, false
	}
	out := primitives.NewMatrix[complex128](n, n)
	flat := src.Flat()
	idx := 0
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			re := flat[idx]
			im := flat[idx+1]
			idx += 2
			out.Set(r, c, complex(re, im))
		}
	}
	return out, true
}

func cloneMatrix[T any](m *primitives.Matrix[T]) *primitives.Matrix[T] {
	return primitives.MapMatrix(m, func(v T) T { return v })
}

func cloneQubitRefs(v *QubitRefs) *QubitRefs {
	out := &QubitRefs{}
	for _, idx := range v.Index.Items() {
		out.Index.Append(&ConstInt{Value: idx.Value}, -1)
	}
	return out
}

func cloneBitRefs(v *BitRefs) *BitRefs {
	out := &BitRefs{}
	for _, idx := range v.Index.Items() {
		out.Index.Append(&ConstInt{Value: idx.Value}, -1)
	}
	return out
}

type locatable interface {
	Location() diagnostics.Location
}

type locatableSetter interface {
	SetLocation(diagnostics.Location)
}

func locationOf(v Value) diagnostics.Location {
	if l, ok := v.(locatable); ok {
		return l.Location()
	}
	return diagnostics.Location{}
}

func withLocation[V Value](v V, loc diagnostics.Location) V {
	if s, ok := Value(v).(locatableSetter); ok {
		s.SetLocation(loc)
	}
	return v
}
