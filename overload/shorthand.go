package overload

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/jvanstraten/libcqasm/ir"
)

// ParseShorthand decodes a compact parameter-type-shorthand string (§4.4):
// each character denotes one parameter — q=qubit, a=axis, b=bit/bool,
// i=int, r=real, c=complex, s=string, j=json, u=complex matrix of size
// 2^n x 2^n where n is the number of q characters in the same string.
// Uppercase marks the parameter assignable (the extended dialect; §9 marks
// this, not the legacy case-sensitive-only dialect, as correct).
func ParseShorthand(spec string) ([]ir.Type, error) {
	numQubits := 0
	for _, ch := range spec {
		if strings.ToLower(string(ch)) == "q" {
			numQubits++
		}
	}
	unitaryDim := 1 << numQubits

	types := make([]ir.Type, 0, len(spec))
	for _, ch := range spec {
		assignable := ch >= 'A' && ch <= 'Z'
		switch strings.ToLower(string(ch)) {
		case "q":
			types = append(types, ir.Qubit())
		case "a":
			types = append(types, ir.AxisT(assignable))
		case "b":
			types = append(types, ir.Bool(assignable))
		case "i":
			types = append(types, ir.Int(assignable))
		case "r":
			types = append(types, ir.Real(assignable))
		case "c":
			types = append(types, ir.Complex(assignable))
		case "s":
			types = append(types, ir.StringT(assignable))
		case "j":
			types = append(types, ir.JsonT(assignable))
		case "u":
			types = append(types, ir.ComplexMatrix(unitaryDim, unitaryDim, assignable))
		default:
			return nil, errors.Errorf("invalid parameter shorthand character %q in %q", ch, spec)
		}
	}
	return types, nil
}
