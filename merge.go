package envfold

import (
	"slices"

	"github.com/envfold/go-envfold/debug"
	"github.com/envfold/go-envfold/ir"
)

// Merge folds documents left to right, later documents winning on
// conflicting keys. Inputs are never mutated; nil documents are skipped.
// Merging no documents yields an empty document.
func Merge(docs ...*ir.Doc) *ir.Doc {
	var res *ir.Doc
	for _, d := range docs {
		if d == nil {
			continue
		}
		if res == nil {
			res = d.Clone()
			continue
		}
		mergeInto(res, d)
	}
	if res == nil {
		return ir.Empty()
	}
	return res
}

// MergeTwo merges src into a copy of base and returns the copy. Neither
// argument is mutated.
func MergeTwo(base, src *ir.Doc) *ir.Doc {
	res := base.Clone()
	mergeInto(res, src)
	return res
}

// mergeInto merges src into base in two passes. Variables go first so that
// comment placement in the second pass can anchor against final variable
// positions, including variables the first pass just inserted.
func mergeInto(base, src *ir.Doc) {
	mergeVars(base, src)
	mergeComments(base, src)
}

func mergeVars(base, src *ir.Doc) {
	for si, v := range src.Nodes {
		if v.Kind != ir.VarKind {
			continue
		}
		if _, bv := findVar(base, v.Key); bv != nil {
			// override: source value and comments win
			if debug.Merge() {
				debug.Logf("merge: override %s=%q (was %q)\n", v.Key, v.Value, bv.Value)
			}
			bv.SetValue(v.Value)
			bv.Comments = slices.Clone(v.Comments)
			continue
		}
		// new key: anchor against the first later key shared with base to
		// keep source-relative order
		bi, _ := intersection(src, si+1, base)
		if debug.Merge() {
			debug.Logf("merge: insert %s=%q at %d\n", v.Key, v.Value, bi)
		}
		if bi < 0 {
			base.Append(v.Clone())
			continue
		}
		base.InsertBefore(bi, v.Clone())
	}
}

func mergeComments(base, src *ir.Doc) {
	for si, c := range src.Nodes {
		if c.Kind != ir.CommentKind {
			continue
		}
		_, anchor := nextVarAfter(src, si)
		if anchor != nil {
			if bi, bn := findVar(base, anchor.Key); bn != nil {
				if precededByEqualComment(base, bi, c) {
					continue
				}
				if debug.Merge() {
					debug.Logf("merge: comment before %s\n", anchor.Key)
				}
				base.InsertBefore(bi, c.Clone())
				continue
			}
		}
		// no anchor in base: trailing comment block
		if hasEqualComment(base, c) {
			continue
		}
		base.Append(c.Clone())
	}
}

// precededByEqualComment reports whether a comment block equal to c appears
// in the contiguous run of comment and blank nodes immediately before index
// i in doc. The whole run counts, not just the nearest block: several source
// groups can anchor to the same variable, and each must be found again on
// re-merge.
func precededByEqualComment(doc *ir.Doc, i int, c *ir.Node) bool {
	for j := i - 1; j >= 0; j-- {
		n := doc.Nodes[j]
		switch n.Kind {
		case ir.BlankKind:
		case ir.CommentKind:
			if ir.Equal(n, c) {
				return true
			}
		default:
			return false
		}
	}
	return false
}

// hasEqualComment reports whether any comment node equal to c exists in
// doc, scanning forward from the head.
func hasEqualComment(doc *ir.Doc, c *ir.Node) bool {
	for _, n := range doc.Nodes {
		if n.Kind == ir.CommentKind && ir.Equal(n, c) {
			return true
		}
	}
	return false
}
