// Package mapping is the mapping table: a case-insensitive scope binding
// source-level aliases (user Mapping statements, and the default q/b
// registers) to semantic values (§"Mapping table"). It is a thin,
// ir-specific facade over internal/scope, itself grounded on the teacher's
// base/scope.
package mapping

import (
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/internal/scope"
	"github.com/jvanstraten/libcqasm/ir"
)

// Scope binds alias names to ir.Values, case-insensitively, with parent
// chaining so a subcircuit or nested block can shadow an outer alias
// without mutating it.
type Scope struct {
	inner *scope.Scope[ir.Value]
}

// New returns a root mapping scope with no bindings.
func New() *Scope {
	return &Scope{inner: scope.New[ir.Value](nil)}
}

// Child returns a new scope nested under s; bindings added to the child are
// invisible to s, but s's existing bindings remain visible through it.
func (s *Scope) Child() *Scope {
	return &Scope{inner: s.inner.Child()}
}

// Define binds alias to value, folding case, overwriting the same-scope
// binding if present and shadowing (but not removing) a parent binding of
// the same name.
func (s *Scope) Define(alias string, value ir.Value) {
	s.inner.Define(alias, value)
}

// Lookup finds the value bound to alias, walking outward through parent
// scopes on a local miss.
func (s *Scope) Lookup(alias string) (ir.Value, bool) {
	return s.inner.Find(alias)
}

// IsLocallyDefined reports whether alias is bound directly in s, ignoring
// any parent scope.
func (s *Scope) IsLocallyDefined(alias string) bool {
	return s.inner.IsLocal(alias)
}

// InstallDefaultRegisters binds the default q and b register aliases to
// QubitRefs/BitRefs over indices 0..numQubits-1 (§4.5 Step C). Every index
// value carries loc, matching the num_qubits expression's own location.
func (s *Scope) InstallDefaultRegisters(numQubits int64, loc diagnostics.Location) {
	indices := make([]int64, numQubits)
	for i := range indices {
		indices[i] = int64(i)
	}
	qubits := ir.NewQubitRefs(indices...)
	bits := ir.NewBitRefs(indices...)
	for _, idx := range qubits.Index.Items() {
		idx.SetLocation(loc)
	}
	for _, idx := range bits.Index.Items() {
		idx.SetLocation(loc)
	}
	s.Define("q", qubits)
	s.Define("b", bits)
}
