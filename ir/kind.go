// Package ir is the semantic tree (§3.2): the analyzer's output. It is
// modeled after the teacher's build/ir package — a discriminated union of
// type and value singletons/constructors rather than a generated class
// hierarchy — adapted from GX's tensor type lattice to cQASM's scalar one.
package ir

// Kind discriminates the ten cQASM semantic types (§3.2).
type Kind int

const (
	QubitKind Kind = iota
	BoolKind
	AxisKind
	IntKind
	RealKind
	ComplexKind
	RealMatrixKind
	ComplexMatrixKind
	StringKind
	JsonKind
)

// String names the kind, matching the cQASM type-name vocabulary.
func (k Kind) String() string {
	switch k {
	case QubitKind:
		return "qubit"
	case BoolKind:
		return "bool"
	case AxisKind:
		return "axis"
	case IntKind:
		return "int"
	case RealKind:
		return "real"
	case ComplexKind:
		return "complex"
	case RealMatrixKind:
		return "real_matrix"
	case ComplexMatrixKind:
		return "complex_matrix"
	case StringKind:
		return "string"
	case JsonKind:
		return "json"
	default:
		return "invalid"
	}
}
