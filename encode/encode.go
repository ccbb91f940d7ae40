package encode

import (
	"io"
	"strings"

	"github.com/envfold/go-envfold/ir"
	"github.com/envfold/go-envfold/token"
)

type EncState struct {
	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes the serialized form of doc to w.
func Encode(doc *ir.Doc, w io.Writer, opts ...EncodeOption) error {
	_, err := io.WriteString(w, String(doc, opts...))
	return err
}

// String returns the serialized form of doc: rendered lines joined with LF.
func String(doc *ir.Doc, opts ...EncodeOption) string {
	return strings.Join(Lines(doc, opts...), "\n")
}

// Lines renders doc to a flat line list, one entry per output line.
func Lines(doc *ir.Doc, opts ...EncodeOption) []string {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var res []string
	for _, n := range doc.Nodes {
		switch n.Kind {
		case ir.BlankKind:
			res = append(res, "")
		case ir.CommentKind:
			for _, ln := range n.Lines {
				res = append(res, es.comment(ln))
			}
		case ir.VarKind:
			for _, ln := range n.Comments {
				res = append(res, es.comment(ln))
			}
			res = append(res, es.variable(n))
		}
	}
	return res
}

func (es *EncState) comment(ln string) string {
	if es.Color == nil || ln == "" {
		return ln
	}
	return es.Color(ir.CommentKind, CommentColor, ln)
}

func (es *EncState) variable(n *ir.Node) string {
	if es.Color == nil {
		return n.Raw
	}
	return es.Color(ir.VarKind, KeyColor, n.Key) +
		es.Color(ir.VarKind, SepColor, "=") +
		es.Color(ir.VarKind, ValueColor, token.Quote(n.Value))
}
