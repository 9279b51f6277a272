package ast

import "github.com/jvanstraten/libcqasm/tree"

// Statement is the sum of Bundle, Mapping, Subcircuit, ErrorModelDecl, and
// ErroneousStatement.
type Statement interface {
	tree.Node
	tree.Completable
	Equal(Statement) bool
	stmtNode()
}

// Bundle is a set of instructions executing in parallel at one cycle.
type Bundle struct {
	tree.Base
	Items       tree.Many[*Instruction]
	Annotations tree.Any[*AnnotationData]
}

func (*Bundle) stmtNode() {}
func (n *Bundle) IsComplete() bool {
	return n.Items.IsComplete() && n.Annotations.IsComplete()
}
func (n *Bundle) Equal(o Statement) bool {
	other, ok := o.(*Bundle)
	if !ok || other == nil {
		return false
	}
	return n.Items.Equal(&other.Items) && n.Annotations.Equal(&other.Annotations)
}

// Mapping binds an alias name to an expression's value.
type Mapping struct {
	tree.Base
	Alias tree.One[*Identifier]
	Expr  tree.One[Expression]
}

func (*Mapping) stmtNode() {}
func (n *Mapping) IsComplete() bool {
	return n.Alias.IsComplete() && n.Expr.IsComplete()
}
func (n *Mapping) Equal(o Statement) bool {
	other, ok := o.(*Mapping)
	if !ok || other == nil {
		return false
	}
	return n.Alias.Equal(&other.Alias) && n.Expr.Equal(&other.Expr)
}

// Subcircuit is a labelled, optionally-repeated loop header that opens a
// new subcircuit; subsequent bundles are appended to it until the next
// Subcircuit statement.
type Subcircuit struct {
	tree.Base
	Name       tree.One[*Identifier]
	Iterations tree.Maybe[Expression]
}

func (*Subcircuit) stmtNode() {}
func (n *Subcircuit) IsComplete() bool {
	return n.Name.IsComplete() && n.Iterations.IsComplete()
}
func (n *Subcircuit) Equal(o Statement) bool {
	other, ok := o.(*Subcircuit)
	if !ok || other == nil {
		return false
	}
	return n.Name.Equal(&other.Name) && n.Iterations.Equal(&other.Iterations)
}

// ErrorModelDecl is a top-level `error_model NAME(args)` declaration
// (§C.2 of SPEC_FULL.md, supplemented from original_source/).
type ErrorModelDecl struct {
	tree.Base
	Name     tree.One[*Identifier]
	Operands tree.One[*ExpressionList]
}

func (*ErrorModelDecl) stmtNode() {}
func (n *ErrorModelDecl) IsComplete() bool {
	return n.Name.IsComplete() && n.Operands.IsComplete()
}
func (n *ErrorModelDecl) Equal(o Statement) bool {
	other, ok := o.(*ErrorModelDecl)
	if !ok || other == nil {
		return false
	}
	return n.Name.Equal(&other.Name) && n.Operands.Equal(&other.Operands)
}

// ErroneousStatement marks a parse-recovery point.
type ErroneousStatement struct {
	tree.Base
}

func (*ErroneousStatement) stmtNode()        {}
func (*ErroneousStatement) IsComplete() bool { return false }
func (n *ErroneousStatement) Equal(o Statement) bool {
	_, ok := o.(*ErroneousStatement)
	return ok
}

// StatementList is an [Any] Statement sequence.
type StatementList struct {
	tree.Base
	Items tree.Any[Statement]
}

func (n *StatementList) IsComplete() bool { return n.Items.IsComplete() }
func (n *StatementList) Equal(o *StatementList) bool {
	if o == nil {
		return false
	}
	return n.Items.Equal(&o.Items)
}
