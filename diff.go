package envfold

import (
	"strings"

	"github.com/envfold/go-envfold/encode"
	"github.com/envfold/go-envfold/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-level diff between the serialized forms of from and
// to. Equal documents yield a single equal diff (or none for empty docs).
func Diff(from, to *ir.Doc) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromTxt := encode.String(from) + "\n"
	toTxt := encode.String(to) + "\n"
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromTxt, toTxt)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// DiffText renders a diff in unified style: one line per changed line,
// prefixed with "+", "-" or two spaces.
func DiffText(diffs []diffpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range splitDiffLines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// HasChanges reports whether diffs contain any insertion or deletion.
func HasChanges(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
