// Package ast is the syntactic tree produced by the parser (§3.1): the
// black-box input to the analyzer. Every node embeds tree.Base, which
// supplies the annotation store (and, through it, the optional
// source-location annotation).
package ast

import (
	"github.com/jvanstraten/libcqasm/tree"
)

// Expression is the sum of every expression node kind (§3.1).
type Expression interface {
	tree.Node
	tree.Completable
	Equal(Expression) bool
	exprNode()
}

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	tree.Base
	Value int64
}

func (*IntegerLiteral) exprNode()          {}
func (*IntegerLiteral) IsComplete() bool   { return true }
func (n *IntegerLiteral) Equal(o Expression) bool {
	other, ok := o.(*IntegerLiteral)
	return ok && other != nil && n.Value == other.Value
}

// FloatLiteral is a real constant.
type FloatLiteral struct {
	tree.Base
	Value float64
}

func (*FloatLiteral) exprNode()        {}
func (*FloatLiteral) IsComplete() bool { return true }
func (n *FloatLiteral) Equal(o Expression) bool {
	other, ok := o.(*FloatLiteral)
	return ok && other != nil && n.Value == other.Value
}

// Identifier is a bare name reference.
type Identifier struct {
	tree.Base
	Name string
}

func (*Identifier) exprNode()        {}
func (*Identifier) IsComplete() bool { return true }
func (n *Identifier) Equal(o Expression) bool {
	other, ok := o.(*Identifier)
	return ok && other != nil && n.Name == other.Name
}

// StringLiteral is a double-quoted string, already escape-resolved.
type StringLiteral struct {
	tree.Base
	Value string
}

func (*StringLiteral) exprNode()        {}
func (*StringLiteral) IsComplete() bool { return true }
func (n *StringLiteral) Equal(o Expression) bool {
	other, ok := o.(*StringLiteral)
	return ok && other != nil && n.Value == other.Value
}

// JsonLiteral is a `{...}` span, preserved verbatim.
type JsonLiteral struct {
	tree.Base
	Value string
}

func (*JsonLiteral) exprNode()        {}
func (*JsonLiteral) IsComplete() bool { return true }
func (n *JsonLiteral) Equal(o Expression) bool {
	other, ok := o.(*JsonLiteral)
	return ok && other != nil && n.Value == other.Value
}

// MatrixLiteral1 is the flat row-major real/imag-pair matrix literal form
// `[[...]]`.
type MatrixLiteral1 struct {
	tree.Base
	Pairs tree.One[*ExpressionList]
}

func (*MatrixLiteral1) exprNode() {}
func (n *MatrixLiteral1) IsComplete() bool {
	return n.Pairs.IsComplete()
}
func (n *MatrixLiteral1) Equal(o Expression) bool {
	other, ok := o.(*MatrixLiteral1)
	if !ok || other == nil {
		return false
	}
	return n.Pairs.Equal(&other.Pairs)
}

// MatrixLiteral2 is the rectangular, one-list-per-row matrix literal form.
type MatrixLiteral2 struct {
	tree.Base
	Rows tree.Many[*ExpressionList]
}

func (*MatrixLiteral2) exprNode() {}
func (n *MatrixLiteral2) IsComplete() bool {
	return n.Rows.IsComplete()
}
func (n *MatrixLiteral2) Equal(o Expression) bool {
	other, ok := o.(*MatrixLiteral2)
	if !ok || other == nil {
		return false
	}
	return n.Rows.Equal(&other.Rows)
}

// FunctionCall invokes a named function with an argument list.
type FunctionCall struct {
	tree.Base
	Name      tree.One[*Identifier]
	Arguments tree.One[*ExpressionList]
}

func (*FunctionCall) exprNode() {}
func (n *FunctionCall) IsComplete() bool {
	return n.Name.IsComplete() && n.Arguments.IsComplete()
}
func (n *FunctionCall) Equal(o Expression) bool {
	other, ok := o.(*FunctionCall)
	if !ok || other == nil {
		return false
	}
	return n.Name.Equal(&other.Name) && n.Arguments.Equal(&other.Arguments)
}

// Index applies an index list to an expression (register indexation).
type Index struct {
	tree.Base
	Expr    tree.One[Expression]
	Indices tree.One[*IndexList]
}

func (*Index) exprNode() {}
func (n *Index) IsComplete() bool {
	return n.Expr.IsComplete() && n.Indices.IsComplete()
}
func (n *Index) Equal(o Expression) bool {
	other, ok := o.(*Index)
	if !ok || other == nil {
		return false
	}
	return n.Expr.Equal(&other.Expr) && n.Indices.Equal(&other.Indices)
}

// Negate is unary minus.
type Negate struct {
	tree.Base
	Expr tree.One[Expression]
}

func (*Negate) exprNode() {}
func (n *Negate) IsComplete() bool {
	return n.Expr.IsComplete()
}
func (n *Negate) Equal(o Expression) bool {
	other, ok := o.(*Negate)
	if !ok || other == nil {
		return false
	}
	return n.Expr.Equal(&other.Expr)
}

// BinaryExpr is the shared shape of Power/Multiply/Divide/Add/Subtract.
type BinaryExpr struct {
	tree.Base
	Lhs tree.One[Expression]
	Rhs tree.One[Expression]
}

func (n *BinaryExpr) IsComplete() bool {
	return n.Lhs.IsComplete() && n.Rhs.IsComplete()
}

func (n *BinaryExpr) equal(o *BinaryExpr) bool {
	return n.Lhs.Equal(&o.Lhs) && n.Rhs.Equal(&o.Rhs)
}

// Power is the `**` binary operator node.
type Power struct{ BinaryExpr }

func (*Power) exprNode() {}
func (n *Power) Equal(o Expression) bool {
	other, ok := o.(*Power)
	return ok && other != nil && n.equal(&other.BinaryExpr)
}

// Multiply is the `*` binary operator node.
type Multiply struct{ BinaryExpr }

func (*Multiply) exprNode() {}
func (n *Multiply) Equal(o Expression) bool {
	other, ok := o.(*Multiply)
	return ok && other != nil && n.equal(&other.BinaryExpr)
}

// Divide is the `/` binary operator node.
type Divide struct{ BinaryExpr }

func (*Divide) exprNode() {}
func (n *Divide) Equal(o Expression) bool {
	other, ok := o.(*Divide)
	return ok && other != nil && n.equal(&other.BinaryExpr)
}

// Add is the `+` binary operator node.
type Add struct{ BinaryExpr }

func (*Add) exprNode() {}
func (n *Add) Equal(o Expression) bool {
	other, ok := o.(*Add)
	return ok && other != nil && n.equal(&other.BinaryExpr)
}

// Subtract is the `-` binary operator node.
type Subtract struct{ BinaryExpr }

func (*Subtract) exprNode() {}
func (n *Subtract) Equal(o Expression) bool {
	other, ok := o.(*Subtract)
	return ok && other != nil && n.equal(&other.BinaryExpr)
}

// ErroneousExpression marks a parse-recovery point: its mere presence
// forces the containing tree's IsComplete() to false (§3.1).
type ErroneousExpression struct {
	tree.Base
}

func (*ErroneousExpression) exprNode()        {}
func (*ErroneousExpression) IsComplete() bool { return false }
func (n *ErroneousExpression) Equal(o Expression) bool {
	_, ok := o.(*ErroneousExpression)
	return ok
}

// ExpressionList is an [Any] Expression sequence.
type ExpressionList struct {
	tree.Base
	Items tree.Any[Expression]
}

func (n *ExpressionList) IsComplete() bool { return n.Items.IsComplete() }
func (n *ExpressionList) Equal(o *ExpressionList) bool {
	if o == nil {
		return false
	}
	return n.Items.Equal(&o.Items)
}
