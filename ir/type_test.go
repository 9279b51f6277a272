package ir

import "testing"

func TestMatrixDimEqualityWithWildcard(t *testing.T) {
	wild := ComplexMatrix(-1, -1, false)
	fixed := ComplexMatrix(2, 2, false)
	if !wild.Equal(fixed) {
		t.Errorf("a wildcard-dimensioned matrix type should equal any concretely-dimensioned one")
	}
	if !fixed.Equal(wild) {
		t.Errorf("Equal should be symmetric for wildcard dimensions")
	}
	other := ComplexMatrix(3, 3, false)
	if fixed.Equal(other) {
		t.Errorf("two differently-dimensioned concrete matrix types must not be equal")
	}
}

func TestAssignableFlagIndependentOfKind(t *testing.T) {
	if Int(false).Assignable() {
		t.Errorf("Int(false).Assignable() = true, want false")
	}
	if !Int(true).Assignable() {
		t.Errorf("Int(true).Assignable() = false, want true")
	}
	if Qubit().Assignable() {
		t.Errorf("Qubit().Assignable() should be false")
	}
}

func TestTypeStrings(t *testing.T) {
	cases := []struct {
		ty   Type
		want string
	}{
		{Qubit(), "qubit"},
		{Bool(false), "bool"},
		{Int(false), "int"},
		{RealMatrix(-1, 2, false), "real_matrix[*,2]"},
		{ComplexMatrix(3, 3, false), "complex_matrix[3,3]"},
	}
	for _, c := range cases {
		if got := c.ty.String(); got != c.want {
			t.Errorf("%T.String() = %q, want %q", c.ty, got, c.want)
		}
	}
}
