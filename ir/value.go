package ir

import (
	"fmt"

	"github.com/jvanstraten/libcqasm/primitives"
	"github.com/jvanstraten/libcqasm/tree"
)

// Value is the sum of the eleven cQASM semantic value kinds (§3.2).
type Value interface {
	tree.Node
	// Type returns the value's (non-assignable) type.
	Type() Type
	Equal(Value) bool
}

// ConstBool is a constant boolean value.
type ConstBool struct {
	tree.Base
	Value bool
}

func (*ConstBool) Type() Type { return Bool(false) }
func (v *ConstBool) Equal(o Value) bool {
	other, ok := o.(*ConstBool)
	return ok && other != nil && v.Value == other.Value
}

// ConstAxis is a constant axis value.
type ConstAxis struct {
	tree.Base
	Value primitives.Axis
}

func (*ConstAxis) Type() Type { return AxisT(false) }
func (v *ConstAxis) Equal(o Value) bool {
	other, ok := o.(*ConstAxis)
	return ok && other != nil && v.Value == other.Value
}

// ConstInt is a constant integer value.
type ConstInt struct {
	tree.Base
	Value int64
}

func (*ConstInt) Type() Type { return Int(false) }
func (v *ConstInt) Equal(o Value) bool {
	other, ok := o.(*ConstInt)
	return ok && other != nil && v.Value == other.Value
}

// ConstReal is a constant real value.
type ConstReal struct {
	tree.Base
	Value float64
}

func (*ConstReal) Type() Type { return Real(false) }
func (v *ConstReal) Equal(o Value) bool {
	other, ok := o.(*ConstReal)
	return ok && other != nil && v.Value == other.Value
}

// ConstComplex is a constant complex value.
type ConstComplex struct {
	tree.Base
	Value complex128
}

func (*ConstComplex) Type() Type { return Complex(false) }
func (v *ConstComplex) Equal(o Value) bool {
	other, ok := o.(*ConstComplex)
	return ok && other != nil && v.Value == other.Value
}

// ConstString is a constant string value.
type ConstString struct {
	tree.Base
	Value string
}

func (*ConstString) Type() Type { return StringT(false) }
func (v *ConstString) Equal(o Value) bool {
	other, ok := o.(*ConstString)
	return ok && other != nil && v.Value == other.Value
}

// ConstJson is a constant, verbatim JSON text value.
type ConstJson struct {
	tree.Base
	Value string
}

func (*ConstJson) Type() Type { return JsonT(false) }
func (v *ConstJson) Equal(o Value) bool {
	other, ok := o.(*ConstJson)
	return ok && other != nil && v.Value == other.Value
}

// ConstRealMatrix is a constant real matrix value.
type ConstRealMatrix struct {
	tree.Base
	Value *primitives.Matrix[float64]
}

func (v *ConstRealMatrix) Type() Type {
	return RealMatrix(v.Value.NumRows(), v.Value.NumCols(), false)
}
func (v *ConstRealMatrix) Equal(o Value) bool {
	other, ok := o.(*ConstRealMatrix)
	if !ok || other == nil {
		return false
	}
	return v.Value.Equal(other.Value, func(a, b float64) bool { return a == b })
}

// ConstComplexMatrix is a constant complex matrix value.
type ConstComplexMatrix struct {
	tree.Base
	Value *primitives.Matrix[complex128]
}

func (v *ConstComplexMatrix) Type() Type {
	return ComplexMatrix(v.Value.NumRows(), v.Value.NumCols(), false)
}
func (v *ConstComplexMatrix) Equal(o Value) bool {
	other, ok := o.(*ConstComplexMatrix)
	if !ok || other == nil {
		return false
	}
	return v.Value.Equal(other.Value, func(a, b complex128) bool { return a == b })
}

// QubitRefs denotes an ordered, possibly-repeating selection of qubit
// indices (a whole register reference, or an indexed sub-selection of one).
type QubitRefs struct {
	tree.Base
	Index tree.Many[*ConstInt]
}

func (*QubitRefs) Type() Type { return Qubit() }
func (v *QubitRefs) Equal(o Value) bool {
	other, ok := o.(*QubitRefs)
	if !ok || other == nil {
		return false
	}
	return v.Index.Equal(&other.Index)
}

// NewQubitRefs builds a QubitRefs value from plain indices.
func NewQubitRefs(indices ...int64) *QubitRefs {
	refs := &QubitRefs{}
	for _, i := range indices {
		refs.Index.Append(&ConstInt{Value: i}, -1)
	}
	return refs
}

// BitRefs denotes an ordered, possibly-repeating selection of
// measurement-bit indices.
type BitRefs struct {
	tree.Base
	Index tree.Many[*ConstInt]
}

func (*BitRefs) Type() Type { return Bool(false) }
func (v *BitRefs) Equal(o Value) bool {
	other, ok := o.(*BitRefs)
	if !ok || other == nil {
		return false
	}
	return v.Index.Equal(&other.Index)
}

// NewBitRefs builds a BitRefs value from plain indices.
func NewBitRefs(indices ...int64) *BitRefs {
	refs := &BitRefs{}
	for _, i := range indices {
		refs.Index.Append(&ConstInt{Value: i}, -1)
	}
	return refs
}

// String renders a value for diagnostics and dumping.
func String(v Value) string {
	switch vv := v.(type) {
	case *ConstBool:
		return fmt.Sprintf("%v", vv.Value)
	case *ConstAxis:
		return vv.Value.String()
	case *ConstInt:
		return fmt.Sprintf("%d", vv.Value)
	case *ConstReal:
		return fmt.Sprintf("%g", vv.Value)
	case *ConstComplex:
		return fmt.Sprintf("%g", vv.Value)
	case *ConstString:
		return fmt.Sprintf("%q", vv.Value)
	case *ConstJson:
		return vv.Value
	case *ConstRealMatrix, *ConstComplexMatrix:
		return fmt.Sprintf("<matrix %s>", v.Type().String())
	case *QubitRefs:
		return fmt.Sprintf("qubit%v", indexList(vv.Index))
	case *BitRefs:
		return fmt.Sprintf("bit%v", indexList(vv.Index))
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

func indexList(m tree.Many[*ConstInt]) []int64 {
	out := make([]int64, m.Len())
	for i, v := range m.Items() {
		out[i] = v.Value
	}
	return out
}
