package ast

import "testing"

func TestExpressionListCompleteness(t *testing.T) {
	el := &ExpressionList{}
	if !el.IsComplete() {
		t.Errorf("empty ExpressionList should be complete (it is an Any)")
	}
	el.Items.Append(&IntegerLiteral{Value: 1}, -1)
	if !el.IsComplete() {
		t.Errorf("ExpressionList with a complete child should be complete")
	}
}

func TestErroneousExpressionForcesIncomplete(t *testing.T) {
	idx := &Index{}
	idx.Expr.Set(&Identifier{Name: "q"})
	il := &IndexList{}
	il.Items.Append(IndexEntry(&IndexItem{}), -1) // IndexItem's Index is unset -> incomplete
	idx.Indices.Set(il)
	if idx.IsComplete() {
		t.Errorf("Index with an incomplete IndexList should be incomplete")
	}

	erroneous := &ErroneousExpression{}
	if erroneous.IsComplete() {
		t.Errorf("ErroneousExpression must never be complete")
	}
}

func TestEqualityStructural(t *testing.T) {
	a := &Add{}
	a.Lhs.Set(&IntegerLiteral{Value: 1})
	a.Rhs.Set(&IntegerLiteral{Value: 2})

	b := &Add{}
	b.Lhs.Set(&IntegerLiteral{Value: 1})
	b.Rhs.Set(&IntegerLiteral{Value: 2})

	if !a.Equal(b) {
		t.Errorf("expected structurally equal Add nodes to be Equal")
	}

	c := &Multiply{}
	c.Lhs.Set(&IntegerLiteral{Value: 1})
	c.Rhs.Set(&IntegerLiteral{Value: 2})
	if a.Equal(c) {
		t.Errorf("Add and Multiply with identical operands must not be Equal")
	}
}

func TestProgramCompleteness(t *testing.T) {
	p := &Program{}
	if p.IsComplete() {
		t.Errorf("empty Program should be incomplete")
	}
	v := &Version{Items: []int{1, 0}}
	p.Version.Set(v)
	p.NumQubits.Set(&IntegerLiteral{Value: 1})
	sl := &StatementList{}
	p.Statements.Set(sl)
	if !p.IsComplete() {
		t.Errorf("fully populated Program should be complete")
	}
}
