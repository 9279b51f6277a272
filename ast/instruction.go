package ast

import "github.com/jvanstraten/libcqasm/tree"

// AnnotationData is a pragma attached to an instruction or a bundle:
// `@interface.operation(operands)`.
type AnnotationData struct {
	tree.Base
	Interface tree.One[*Identifier]
	Operation tree.One[*Identifier]
	Operands  tree.Maybe[*ExpressionList]
}

func (n *AnnotationData) IsComplete() bool {
	return n.Interface.IsComplete() && n.Operation.IsComplete() && n.Operands.IsComplete()
}
func (n *AnnotationData) Equal(o *AnnotationData) bool {
	if o == nil {
		return false
	}
	return n.Interface.Equal(&o.Interface) &&
		n.Operation.Equal(&o.Operation) &&
		n.Operands.Equal(&o.Operands)
}

// Instruction is a single gate/operation application; it is not itself a
// Statement (§3.1): it only ever appears inside a Bundle.
type Instruction struct {
	tree.Base
	Name        tree.One[*Identifier]
	Condition   tree.Maybe[Expression]
	Operands    tree.One[*ExpressionList]
	Annotations tree.Any[*AnnotationData]
}

func (n *Instruction) IsComplete() bool {
	return n.Name.IsComplete() && n.Condition.IsComplete() &&
		n.Operands.IsComplete() && n.Annotations.IsComplete()
}
func (n *Instruction) Equal(o *Instruction) bool {
	if o == nil {
		return false
	}
	return n.Name.Equal(&o.Name) && n.Condition.Equal(&o.Condition) &&
		n.Operands.Equal(&o.Operands) && n.Annotations.Equal(&o.Annotations)
}
