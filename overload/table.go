// Package overload implements the generic callable-table machinery shared
// by FunctionTable, InstructionTable, and ErrorModelTable (§4.4): a
// case-insensitive mapping from name to an insertion-ordered list of
// overloads, resolved by first-applicable-match after per-argument
// promotion. Grounded on the teacher's build/builder/builtins registration
// pattern and, for the candidate-list diagnostic, on
// original_source/src/cqasm-resolver.cpp.
package overload

import (
	"fmt"
	"strings"

	"github.com/jvanstraten/libcqasm/internal/cistring"
	"github.com/jvanstraten/libcqasm/internal/ordmap"
	"github.com/jvanstraten/libcqasm/ir"
)

// Overload is one (parameter-type-list, tag) pair registered under a name.
type Overload[Tag any] struct {
	Tag        Tag
	ParamTypes []ir.Type
}

// Table is a case-insensitive callable table shared by FunctionTable,
// InstructionTable, and ErrorModelTable.
type Table[Tag any] struct {
	entries *ordmap.Map[string, []Overload[Tag]]
	// displayNames preserves the first-registered casing of each name for
	// diagnostics, independent of the folded lookup key.
	displayNames *ordmap.Map[string, string]
}

// New returns an empty table.
func New[Tag any]() *Table[Tag] {
	return &Table[Tag]{
		entries:      ordmap.New[string, []Overload[Tag]](),
		displayNames: ordmap.New[string, string](),
	}
}

// Register appends a new overload to name. Overloads are appended, never
// reordered or deduplicated (§4.4 "Overloads are appended to a name; later
// additions never reorder" — "registering the same overload twice... yields
// the first-registered tag" per §8.2, which Resolve's first-match
// semantics guarantee without Register itself needing to check for
// duplicates).
func (t *Table[Tag]) Register(name string, tag Tag, paramTypes []ir.Type) {
	key := cistring.Fold(name)
	if !t.displayNames.Has(key) {
		t.displayNames.Store(key, name)
	}
	existing, _ := t.entries.Load(key)
	existing = append(existing, Overload[Tag]{Tag: tag, ParamTypes: paramTypes})
	t.entries.Store(key, existing)
}

// Has reports whether any overload is registered under name.
func (t *Table[Tag]) Has(name string) bool {
	return t.entries.Has(cistring.Fold(name))
}

// Overloads returns the overloads registered under name, in registration
// order.
func (t *Table[Tag]) Overloads(name string) []Overload[Tag] {
	existing, _ := t.entries.Load(cistring.Fold(name))
	return existing
}

// Resolve implements §4.4's resolution algorithm: lowercase-match the name,
// then return the tag and promoted arguments of the first overload whose
// arity matches and whose every argument promotes successfully.
func (t *Table[Tag]) Resolve(name string, args []ir.Value) (Tag, []ir.Value, error) {
	var zero Tag
	key := cistring.Fold(name)
	overloads, ok := t.entries.Load(key)
	if !ok {
		return zero, nil, &NameResolutionFailure{Name: name}
	}
	display, _ := t.displayNames.Load(key)
	var attempted []string
	for _, ov := range overloads {
		if len(ov.ParamTypes) != len(args) {
			attempted = append(attempted, signature(display, ov.ParamTypes))
			continue
		}
		promoted := make([]ir.Value, len(args))
		mismatch := false
		for i, a := range args {
			p, err := ir.Promote(a, ov.ParamTypes[i])
			if err != nil {
				mismatch = true
				break
			}
			promoted[i] = p
		}
		if mismatch {
			attempted = append(attempted, signature(display, ov.ParamTypes))
			continue
		}
		return ov.Tag, promoted, nil
	}
	return zero, nil, &OverloadResolutionFailure{Name: name, ArgTypes: argTypeNames(args), Candidates: attempted}
}

func signature(name string, paramTypes []ir.Type) string {
	names := make([]string, len(paramTypes))
	for i, p := range paramTypes {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(names, ", "))
}

func argTypeNames(args []ir.Value) []string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Type().String()
	}
	return names
}
