package envfold

import (
	"github.com/envfold/go-envfold/ir"
)

// FindVariable returns the first variable node in doc with the given key,
// or nil if the key is not present.
func FindVariable(doc *ir.Doc, key string) *ir.Node {
	_, n := findVar(doc, key)
	return n
}

func findVar(doc *ir.Doc, key string) (int, *ir.Node) {
	for i, n := range doc.Nodes {
		if n.Kind == ir.VarKind && n.Key == key {
			return i, n
		}
	}
	return -1, nil
}

// nextVarAfter returns the first variable node strictly after index i.
func nextVarAfter(doc *ir.Doc, i int) (int, *ir.Node) {
	for j := i + 1; j < len(doc.Nodes); j++ {
		if doc.Nodes[j].Kind == ir.VarKind {
			return j, doc.Nodes[j]
		}
	}
	return -1, nil
}

// intersection scans src from index from for the first variable whose key
// also occurs in base, and returns that variable's position in base. This
// anchors insertion of new variables: a variable new to base goes
// immediately before the first later key the two documents share.
func intersection(src *ir.Doc, from int, base *ir.Doc) (int, *ir.Node) {
	for j := from; j < len(src.Nodes); j++ {
		n := src.Nodes[j]
		if n.Kind != ir.VarKind {
			continue
		}
		if bi, bn := findVar(base, n.Key); bn != nil {
			return bi, bn
		}
	}
	return -1, nil
}
