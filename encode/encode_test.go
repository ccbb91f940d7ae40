package encode

import (
	"strings"
	"testing"

	"github.com/envfold/go-envfold/ir"
	"github.com/envfold/go-envfold/parse"

	"github.com/google/go-cmp/cmp"
)

type encodeTest struct {
	in  string
	out string
}

func TestString(t *testing.T) {
	ets := []encodeTest{
		{in: "", out: ""},
		{in: "KEY=value", out: "KEY=value"},
		{in: "KEY = value", out: "KEY=value"},
		{in: "KEY='a b'", out: `KEY="a b"`},
		{
			in:  "# db host\nDB_HOST=localhost",
			out: "# db host\nDB_HOST=localhost",
		},
		{
			// blank runs compress
			in:  "A=1\n\n\n\nB=2",
			out: "A=1\n\nB=2",
		},
		{
			// CRLF normalizes to LF
			in:  "A=1\r\nB=2",
			out: "A=1\nB=2",
		},
		{
			// compressed blank marker reproduces the original spacing
			in:  "# c\n\n\n# c2",
			out: "# c\n\n# c2",
		},
		{
			in:  "# banner\n\nKEY=1",
			out: "# banner\n\nKEY=1",
		},
	}
	for _, et := range ets {
		got := String(parse.Parse([]byte(et.in)))
		if got != et.out {
			t.Errorf("String(parse(%q)) = %q, want %q", et.in, got, et.out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"KEY=value",
		"# for key\nKEY=value",
		"# banner\n\n# for A\nA=1\n\nB=2\n# trailing",
		"A=\"multi\\nline\"\nB='quoted literal'",
		"not an assignment\nA=1",
		"# c\n\n# c2\n\n\n# c3\nX=1",
	}
	for _, in := range inputs {
		doc := parse.Parse([]byte(in))
		again := parse.Parse([]byte(String(doc)))
		if diff := cmp.Diff(doc, again); diff != "" {
			t.Errorf("round trip of %q changed the document (-first +again):\n%s", in, diff)
		}
	}
}

func TestLines(t *testing.T) {
	doc := ir.FromNodes(
		ir.FromComment([]string{"# header", ""}),
		ir.FromComment([]string{"# group"}),
		ir.Blank(),
		ir.FromVar("A", "1"),
	)
	got := Lines(doc)
	want := []string{"# header", "", "# group", "", "A=1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeColors(t *testing.T) {
	doc := ir.FromNodes(ir.FromVar("A", "1"))
	colors := NewColors()
	got := String(doc, EncodeColors(colors))
	// color escape sequences may be disabled in CI; the rendered text must
	// still contain the key and value
	if !strings.Contains(got, "A") || !strings.Contains(got, "1") {
		t.Errorf("colored output lost content: %q", got)
	}
}
