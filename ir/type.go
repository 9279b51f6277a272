package ir

import (
	"fmt"

	"github.com/jvanstraten/libcqasm/tree"
)

// Type is the sum of the ten cQASM semantic types (§3.2).
type Type interface {
	tree.Node
	Kind() Kind
	// Assignable reports whether an operand slot of this type accepts an
	// lvalue. Every non-qubit type carries this flag; Qubit ignores it
	// (qubit operands are never themselves assigned to).
	Assignable() bool
	Equal(Type) bool
	String() string
}

type baseType struct {
	tree.Base
	assignable bool
}

func (t *baseType) Assignable() bool { return t.assignable }

// QubitType is the type of a qubit reference operand.
type QubitType struct{ baseType }

func (*QubitType) Kind() Kind { return QubitKind }
func (t *QubitType) Equal(o Type) bool {
	_, ok := o.(*QubitType)
	return ok
}
func (t *QubitType) String() string { return "qubit" }

// Qubit returns the qubit type.
func Qubit() *QubitType { return &QubitType{} }

// BoolType is the type of a boolean/measurement-bit value.
type BoolType struct{ baseType }

func (*BoolType) Kind() Kind { return BoolKind }
func (t *BoolType) Equal(o Type) bool {
	_, ok := o.(*BoolType)
	return ok
}
func (t *BoolType) String() string { return "bool" }

// Bool returns the bool type, assignable iff assignable is true.
func Bool(assignable bool) *BoolType { return &BoolType{baseType{assignable: assignable}} }

// AxisType is the type of an X/Y/Z axis constant.
type AxisType struct{ baseType }

func (*AxisType) Kind() Kind { return AxisKind }
func (t *AxisType) Equal(o Type) bool {
	_, ok := o.(*AxisType)
	return ok
}
func (t *AxisType) String() string { return "axis" }

// AxisT returns the axis type.
func AxisT(assignable bool) *AxisType { return &AxisType{baseType{assignable: assignable}} }

// IntType is the type of an integer constant.
type IntType struct{ baseType }

func (*IntType) Kind() Kind { return IntKind }
func (t *IntType) Equal(o Type) bool {
	_, ok := o.(*IntType)
	return ok
}
func (t *IntType) String() string { return "int" }

// Int returns the int type.
func Int(assignable bool) *IntType { return &IntType{baseType{assignable: assignable}} }

// RealType is the type of a real (floating point) constant.
type RealType struct{ baseType }

func (*RealType) Kind() Kind { return RealKind }
func (t *RealType) Equal(o Type) bool {
	_, ok := o.(*RealType)
	return ok
}
func (t *RealType) String() string { return "real" }

// Real returns the real type.
func Real(assignable bool) *RealType { return &RealType{baseType{assignable: assignable}} }

// ComplexType is the type of a complex constant.
type ComplexType struct{ baseType }

func (*ComplexType) Kind() Kind { return ComplexKind }
func (t *ComplexType) Equal(o Type) bool {
	_, ok := o.(*ComplexType)
	return ok
}
func (t *ComplexType) String() string { return "complex" }

// Complex returns the complex type.
func Complex(assignable bool) *ComplexType { return &ComplexType{baseType{assignable: assignable}} }

// StringType is the type of a string constant.
type StringType struct{ baseType }

func (*StringType) Kind() Kind { return StringKind }
func (t *StringType) Equal(o Type) bool {
	_, ok := o.(*StringType)
	return ok
}
func (t *StringType) String() string { return "string" }

// StringT returns the string type.
func StringT(assignable bool) *StringType { return &StringType{baseType{assignable: assignable}} }

// JsonType is the type of a JSON constant.
type JsonType struct{ baseType }

func (*JsonType) Kind() Kind { return JsonKind }
func (t *JsonType) Equal(o Type) bool {
	_, ok := o.(*JsonType)
	return ok
}
func (t *JsonType) String() string { return "json" }

// JsonT returns the json type.
func JsonT(assignable bool) *JsonType { return &JsonType{baseType{assignable: assignable}} }

// matrixDimsEqual treats a negative dimension as "unconstrained": it
// matches any concrete dimension, including another wildcard (§3.2 "A
// negative row/column count denotes unconstrained").
func matrixDimsEqual(a, b int) bool {
	if a < 0 || b < 0 {
		return true
	}
	return a == b
}

// RealMatrixType is the type of a real matrix constant, optionally
// dimension-constrained.
type RealMatrixType struct {
	baseType
	NumRows, NumCols int
}

func (*RealMatrixType) Kind() Kind { return RealMatrixKind }
func (t *RealMatrixType) Equal(o Type) bool {
	other, ok := o.(*RealMatrixType)
	return ok && matrixDimsEqual(t.NumRows, other.NumRows) && matrixDimsEqual(t.NumCols, other.NumCols)
}
func (t *RealMatrixType) String() string {
	return fmt.Sprintf("real_matrix[%s,%s]", dimString(t.NumRows), dimString(t.NumCols))
}

// RealMatrix returns the real-matrix type with the given dimensions; a
// negative dimension means "unconstrained".
func RealMatrix(rows, cols int, assignable bool) *RealMatrixType {
	return &RealMatrixType{baseType{assignable: assignable}, rows, cols}
}

// ComplexMatrixType is the type of a complex matrix constant, optionally
// dimension-constrained.
type ComplexMatrixType struct {
	baseType
	NumRows, NumCols int
}

func (*ComplexMatrixType) Kind() Kind { return ComplexMatrixKind }
func (t *ComplexMatrixType) Equal(o Type) bool {
	other, ok := o.(*ComplexMatrixType)
	return ok && matrixDimsEqual(t.NumRows, other.NumRows) && matrixDimsEqual(t.NumCols, other.NumCols)
}
func (t *ComplexMatrixType) String() string {
	return fmt.Sprintf("complex_matrix[%s,%s]", dimString(t.NumRows), dimString(t.NumCols))
}

// ComplexMatrix returns the complex-matrix type with the given dimensions;
// a negative dimension means "unconstrained".
func ComplexMatrix(rows, cols int, assignable bool) *ComplexMatrixType {
	return &ComplexMatrixType{baseType{assignable: assignable}, rows, cols}
}

func dimString(n int) string {
	if n < 0 {
		return "*"
	}
	return fmt.Sprintf("%d", n)
}
