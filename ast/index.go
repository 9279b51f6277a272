package ast

import "github.com/jvanstraten/libcqasm/tree"

// IndexEntry is the sum of IndexItem and IndexRange.
type IndexEntry interface {
	tree.Node
	tree.Completable
	Equal(IndexEntry) bool
	indexEntryNode()
}

// IndexItem selects a single index.
type IndexItem struct {
	tree.Base
	Index tree.One[Expression]
}

func (*IndexItem) indexEntryNode() {}
func (n *IndexItem) IsComplete() bool {
	return n.Index.IsComplete()
}
func (n *IndexItem) Equal(o IndexEntry) bool {
	other, ok := o.(*IndexItem)
	if !ok || other == nil {
		return false
	}
	return n.Index.Equal(&other.Index)
}

// IndexRange selects an inclusive range of indices.
type IndexRange struct {
	tree.Base
	First tree.One[Expression]
	Last  tree.One[Expression]
}

func (*IndexRange) indexEntryNode() {}
func (n *IndexRange) IsComplete() bool {
	return n.First.IsComplete() && n.Last.IsComplete()
}
func (n *IndexRange) Equal(o IndexEntry) bool {
	other, ok := o.(*IndexRange)
	if !ok || other == nil {
		return false
	}
	return n.First.Equal(&other.First) && n.Last.Equal(&other.Last)
}

// IndexList is a non-empty [Many] IndexEntry sequence.
type IndexList struct {
	tree.Base
	Items tree.Many[IndexEntry]
}

func (n *IndexList) IsComplete() bool { return n.Items.IsComplete() }
func (n *IndexList) Equal(o *IndexList) bool {
	if o == nil {
		return false
	}
	return n.Items.Equal(&o.Items)
}
