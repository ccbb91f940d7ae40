package envfold

import (
	"strings"
	"testing"

	"github.com/envfold/go-envfold/parse"
)

func TestDiffEqual(t *testing.T) {
	a := parse.ParseString("# c\nA=1\n\nB=2")
	b := parse.ParseString("# c\nA=1\n\nB=2")
	if HasChanges(Diff(a, b)) {
		t.Errorf("equal documents must have no changes")
	}
}

func TestDiffChanges(t *testing.T) {
	a := parse.ParseString("A=1\nB=2")
	b := parse.ParseString("A=1\nB=3\nC=4")
	diffs := Diff(a, b)
	if !HasChanges(diffs) {
		t.Fatalf("expected changes")
	}
	txt := DiffText(diffs)
	for _, want := range []string{"- B=2", "+ B=3", "+ C=4", "  A=1"} {
		if !strings.Contains(txt, want) {
			t.Errorf("diff text missing %q:\n%s", want, txt)
		}
	}
}
