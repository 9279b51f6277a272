package ir

import (
	"github.com/jvanstraten/libcqasm/primitives"
	"github.com/jvanstraten/libcqasm/tree"
)

// AnnotationData is the lowered form of an AST AnnotationData pragma
// (§3.2, §4.5.4): the interface/operation names are already plain strings
// (their source Identifier wrappers have been stripped), and every operand
// expression has been evaluated to a Value.
type AnnotationData struct {
	tree.Base
	Interface string
	Operation string
	Operands  tree.Any[Value]
}

func (n *AnnotationData) Equal(o *AnnotationData) bool {
	if o == nil {
		return false
	}
	return n.Interface == o.Interface && n.Operation == o.Operation && n.Operands.Equal(&o.Operands)
}

// Instruction is a resolved gate/operation application (§3.2). Type
// carries the overload.InstructionType that resolution selected; it is
// kept as an opaque `any` (rather than a concrete *overload.InstructionType)
// so this package does not import overload, which itself imports ir for
// its Type/Value vocabulary.
type Instruction struct {
	tree.Base
	Type        any
	Name        string
	Condition   tree.One[Value]
	Operands    tree.Any[Value]
	Annotations tree.Any[*AnnotationData]
}

func (n *Instruction) Equal(o *Instruction) bool {
	if o == nil {
		return false
	}
	return n.Name == o.Name && n.Condition.Equal(&o.Condition) &&
		n.Operands.Equal(&o.Operands) && n.Annotations.Equal(&o.Annotations)
}

// Bundle is a set of resolved instructions executing in parallel at one
// cycle (§3.2).
type Bundle struct {
	tree.Base
	Items       tree.Many[*Instruction]
	Annotations tree.Any[*AnnotationData]
}

func (n *Bundle) Equal(o *Bundle) bool {
	if o == nil {
		return false
	}
	return n.Items.Equal(&o.Items) && n.Annotations.Equal(&o.Annotations)
}

// Subcircuit is a named, repeated sequence of bundles (§3.2).
type Subcircuit struct {
	tree.Base
	Name       string
	Iterations int64
	Bundles    tree.Any[*Bundle]
}

func (n *Subcircuit) Equal(o *Subcircuit) bool {
	if o == nil {
		return false
	}
	return n.Name == o.Name && n.Iterations == o.Iterations && n.Bundles.Equal(&o.Bundles)
}

// ErrorModel is a resolved top-level `error_model` declaration (§C.2 of
// SPEC_FULL.md). Type mirrors Instruction.Type's opaque-reference design.
type ErrorModel struct {
	tree.Base
	Type     any
	Name     string
	Operands tree.Any[Value]
}

func (n *ErrorModel) Equal(o *ErrorModel) bool {
	if o == nil {
		return false
	}
	return n.Name == o.Name && n.Operands.Equal(&o.Operands)
}

// Program is the fully analyzed semantic tree (§3.2).
type Program struct {
	tree.Base
	Version     primitives.Version
	NumQubits   int64
	Subcircuits tree.Any[*Subcircuit]
	ErrorModel  tree.Maybe[*ErrorModel]
}

func (n *Program) Equal(o *Program) bool {
	if o == nil {
		return false
	}
	return n.Version.Equal(o.Version) && n.NumQubits == o.NumQubits &&
		n.Subcircuits.Equal(&o.Subcircuits) && n.ErrorModel.Equal(&o.ErrorModel)
}
