package parse

import (
	"github.com/envfold/go-envfold/debug"
	"github.com/envfold/go-envfold/ir"
	"github.com/envfold/go-envfold/token"
)

func Parse(d []byte, opts ...ParseOption) *ir.Doc {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	lines := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	doc := group(lines)
	if debug.Parse() {
		debug.Logf("parsed %d lines into %d nodes\n", len(lines), len(doc.Nodes))
	}
	return doc
}

func ParseString(s string, opts ...ParseOption) *ir.Doc {
	return Parse([]byte(s), opts...)
}

// group runs the forward grouping scan over classified lines. Comment lines
// accumulate in a pending buffer until a variable claims them or a blank run
// detaches them into a standalone comment node. Blank-line handling needs
// lookahead to the next non-blank line; see peekNonBlank.
func group(lines []token.Line) *ir.Doc {
	doc := &ir.Doc{}
	var (
		pending []string
		// marked means pending already ends with the compressed blank
		// marker: a "" entry recording one blank line between comment
		// groups.
		marked bool
	)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		doc.Append(ir.FromComment(pending))
		pending, marked = nil, false
	}
	i := 0
	for i < len(lines) {
		ln := &lines[i]
		switch ln.Type {
		case token.TVar:
			v := ir.FromVar(ln.Key, ln.Value)
			v.Comments = pending
			pending, marked = nil, false
			doc.Append(v)
			i++
		case token.TComment:
			if marked {
				// the buffer was closed off by a blank line between
				// comment groups; it stands alone
				flush()
			}
			pending = append(pending, ln.Text)
			i++
		case token.TBlank:
			j := peekNonBlank(lines, i)
			switch {
			case len(pending) > 0 && j < len(lines) && lines[j].Type == token.TComment:
				if !marked {
					pending = append(pending, "")
					marked = true
				}
			case len(pending) > 0:
				flush()
				doc.Append(ir.Blank())
			default:
				doc.Append(ir.Blank())
			}
			// the whole blank run collapses to at most one node
			i = j
		}
	}
	flush()
	if len(doc.Nodes) == 0 {
		doc.Append(ir.Blank())
	}
	return doc
}

// peekNonBlank returns the index of the first non-blank line at or after i,
// or len(lines) if the rest of the input is blank.
func peekNonBlank(lines []token.Line, i int) int {
	for i < len(lines) && lines[i].Type == token.TBlank {
		i++
	}
	return i
}
