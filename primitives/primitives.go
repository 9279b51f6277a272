// Package primitives provides the scalar semantic types shared by the
// syntactic and semantic trees: strings, integers, reals, complex numbers,
// the fixed three-value axis enumeration, a dense matrix, and an ordered
// version identifier.
package primitives

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Axis names one of the three fixed rotation/measurement axes.
type Axis int

const (
	// AxisX is the X axis.
	AxisX Axis = iota
	// AxisY is the Y axis.
	AxisY
	// AxisZ is the Z axis.
	AxisZ
)

// String returns the lower-case axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis resolves a case-insensitive axis name.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, errors.Errorf("%q is not a valid axis (expected x, y or z)", s)
	}
}

// Version is an ordered, non-empty sequence of non-negative integer
// components, as written in a cQASM `version M.N` header.
type Version []int

// ParseVersion parses a dot-separated sequence of integers. It does not
// reject negative components; that check belongs to the analyzer (§Step A),
// which must record negative components as errors rather than abort parsing.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	v := make(Version, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid version component %q", p)
		}
		v = append(v, n)
	}
	if len(v) == 0 {
		return nil, errors.New("version must have at least one component")
	}
	return v, nil
}

// String renders the version in dotted form.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Equal reports structural equality.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// Compare orders two versions component-wise, zero-padding the shorter
// sequence, matching the libqasm original's vector-backed version_t
// comparison. The padding happens here because slices.Compare alone treats
// a shorter-but-equal-prefix sequence as lesser, which is wrong once the
// missing trailing components are implicitly zero.
func (v Version) Compare(o Version) int {
	n := len(v)
	if len(o) > n {
		n = len(o)
	}
	return slices.Compare(padVersion(v, n), padVersion(o, n))
}

func padVersion(v Version, n int) Version {
	if len(v) >= n {
		return v
	}
	padded := make(Version, n)
	copy(padded, v)
	return padded
}

// LessThan reports whether v orders strictly before o.
func (v Version) LessThan(o Version) bool {
	return v.Compare(o) < 0
}

// HasNegativeComponent reports whether any component is negative.
func (v Version) HasNegativeComponent() bool {
	return slices.ContainsFunc(v, func(n int) bool { return n < 0 })
}

// Complex is a cQASM complex scalar. Go's built-in complex128 already
// provides exactly the value semantics (real, imag pair, equality,
// arithmetic) the original's complex_t wraps by hand, so no custom type is
// introduced here.
type Complex = complex128
