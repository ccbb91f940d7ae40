package ir

import (
	"slices"

	"github.com/envfold/go-envfold/token"
)

// Node is one block of an env document: a variable assignment, a group of
// comment lines, or a run of blank lines compressed to a single marker.
//
// The IR works as a tagged union: values are placed in fields depending on
// the node kind. VarKind uses Key, Value, Raw and Comments; CommentKind uses
// Lines; BlankKind carries no payload.
type Node struct {
	Kind Kind

	// Key and Value hold a variable's identifier and decoded value. Raw is
	// the serializable "key=value" form and is re-derived whenever the value
	// changes; see SetValue. Comments holds the comment lines immediately
	// preceding the variable in its source document.
	Key      string
	Value    string
	Raw      string
	Comments []string

	// Lines holds a standalone comment group. A single trailing "" entry is
	// a compressed blank marker: one blank line that separated this group
	// from a following comment group in the source.
	Lines []string
}

func FromVar(key, value string) *Node {
	n := &Node{Kind: VarKind, Key: key}
	n.SetValue(value)
	return n
}

func FromComment(lines []string) *Node {
	return &Node{Kind: CommentKind, Lines: lines}
}

func Blank() *Node {
	return &Node{Kind: BlankKind}
}

// SetValue updates a variable's value and re-derives its raw form.
func (n *Node) SetValue(v string) {
	n.Value = v
	n.Raw = n.Key + "=" + token.Quote(v)
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Key = n.Key
	dst.Value = n.Value
	dst.Raw = n.Raw
	dst.Comments = slices.Clone(n.Comments)
	dst.Lines = slices.Clone(n.Lines)
	return dst
}

// Doc is an ordered sequence of nodes representing one env document. An
// empty or whitespace-only source collapses to a single blank node.
//
// Nodes are held in a slice with index-based insertion rather than a linked
// chain, so a document exclusively owns its nodes and splicing never aliases
// nodes between documents.
type Doc struct {
	Nodes []*Node
}

func FromNodes(nodes ...*Node) *Doc {
	return &Doc{Nodes: nodes}
}

// Empty returns a document equivalent to parsing an empty source.
func Empty() *Doc {
	return FromNodes(Blank())
}

func (d *Doc) Clone() *Doc {
	res := &Doc{Nodes: make([]*Node, len(d.Nodes))}
	for i, n := range d.Nodes {
		res.Nodes[i] = n.Clone()
	}
	return res
}

func (d *Doc) Append(n *Node) {
	d.Nodes = append(d.Nodes, n)
}

// InsertBefore splices n into the document immediately before index i. An
// out of range index appends instead; the merge algorithm only produces
// indices it found by construction, so the fallback is defensive.
func (d *Doc) InsertBefore(i int, n *Node) {
	if i < 0 || i > len(d.Nodes) {
		d.Append(n)
		return
	}
	d.Nodes = slices.Insert(d.Nodes, i, n)
}

// Vars returns the document's variable nodes in order.
func (d *Doc) Vars() []*Node {
	var res []*Node
	for _, n := range d.Nodes {
		if n.Kind == VarKind {
			res = append(res, n)
		}
	}
	return res
}

func (d *Doc) Visit(f func(i int, n *Node) error) error {
	for i, n := range d.Nodes {
		if err := f(i, n); err != nil {
			return err
		}
	}
	return nil
}
