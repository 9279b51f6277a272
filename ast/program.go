package ast

import (
	"github.com/jvanstraten/libcqasm/primitives"
	"github.com/jvanstraten/libcqasm/tree"
)

// Version wraps primitives.Version as a tree node so it can carry a source
// location and participate in IsComplete()/Equal() like any other node.
type Version struct {
	tree.Base
	Items primitives.Version
}

// IsComplete requires a non-empty version sequence (§3.1 invariant).
func (n *Version) IsComplete() bool { return len(n.Items) > 0 }
func (n *Version) Equal(o *Version) bool {
	if o == nil {
		return false
	}
	return n.Items.Equal(o.Items)
}

// Root is the sum of Program and ErroneousProgram.
type Root interface {
	tree.Node
	tree.Completable
	Equal(Root) bool
	rootNode()
}

// Program is a complete cQASM source file: a version header, a qubit
// count, and a list of statements.
type Program struct {
	tree.Base
	Version    tree.One[*Version]
	NumQubits  tree.One[Expression]
	Statements tree.One[*StatementList]
}

func (*Program) rootNode() {}
func (n *Program) IsComplete() bool {
	return n.Version.IsComplete() && n.NumQubits.IsComplete() && n.Statements.IsComplete()
}
func (n *Program) Equal(o Root) bool {
	other, ok := o.(*Program)
	if !ok || other == nil {
		return false
	}
	return n.Version.Equal(&other.Version) &&
		n.NumQubits.Equal(&other.NumQubits) &&
		n.Statements.Equal(&other.Statements)
}

// ErroneousProgram marks a parse failure too severe to recover a Program
// shape from.
type ErroneousProgram struct {
	tree.Base
}

func (*ErroneousProgram) rootNode()        {}
func (*ErroneousProgram) IsComplete() bool { return false }
func (n *ErroneousProgram) Equal(o Root) bool {
	_, ok := o.(*ErroneousProgram)
	return ok
}
