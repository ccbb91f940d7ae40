package parse

import (
	"testing"

	"github.com/envfold/go-envfold/ir"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in   string
	want []*ir.Node
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{
			in:   "",
			want: []*ir.Node{ir.Blank()},
		},
		{
			in:   " \n\t\n   ",
			want: []*ir.Node{ir.Blank()},
		},
		{
			in:   "KEY=value",
			want: []*ir.Node{ir.FromVar("KEY", "value")},
		},
		{
			// comment immediately before a variable belongs to it
			in: "# db host\nDB_HOST=localhost",
			want: []*ir.Node{
				varWith([]string{"# db host"}, "DB_HOST", "localhost"),
			},
		},
		{
			in: "# a\n# b\nKEY=1",
			want: []*ir.Node{
				varWith([]string{"# a", "# b"}, "KEY", "1"),
			},
		},
		{
			// blank line detaches the comment from the variable
			in: "# banner\n\nKEY=1",
			want: []*ir.Node{
				ir.FromComment([]string{"# banner"}),
				ir.Blank(),
				ir.FromVar("KEY", "1"),
			},
		},
		{
			// a run of blanks compresses to one node
			in: "A=1\n\n\n\n\nB=2",
			want: []*ir.Node{
				ir.FromVar("A", "1"),
				ir.Blank(),
				ir.FromVar("B", "2"),
			},
		},
		{
			// blank run between comment groups compresses into the first
			// group as one empty marker
			in: "# c\n\n\n# c2",
			want: []*ir.Node{
				ir.FromComment([]string{"# c", ""}),
				ir.FromComment([]string{"# c2"}),
			},
		},
		{
			// trailing comment buffer flushes at end of input
			in: "A=1\n# trailing",
			want: []*ir.Node{
				ir.FromVar("A", "1"),
				ir.FromComment([]string{"# trailing"}),
			},
		},
		{
			// unrecognized lines survive as comments
			in: "not an assignment\nA=1",
			want: []*ir.Node{
				varWith([]string{"not an assignment"}, "A", "1"),
			},
		},
		{
			// duplicate keys produce multiple nodes; parse does not dedupe
			in: "A=1\nA=2",
			want: []*ir.Node{
				ir.FromVar("A", "1"),
				ir.FromVar("A", "2"),
			},
		},
		{
			in: "A='  spaced  '\nB=\"x\\ny\"",
			want: []*ir.Node{
				ir.FromVar("A", "  spaced  "),
				ir.FromVar("B", "x\ny"),
			},
		},
		{
			// CRLF input
			in: "A=1\r\n\r\nB=2\r\n",
			want: []*ir.Node{
				ir.FromVar("A", "1"),
				ir.Blank(),
				ir.FromVar("B", "2"),
				ir.Blank(),
			},
		},
		{
			// marked comment group followed by comment then variable: the
			// marked group stands alone, the fresh group attaches
			in: "# standalone\n\n# for A\nA=1",
			want: []*ir.Node{
				ir.FromComment([]string{"# standalone", ""}),
				varWith([]string{"# for A"}, "A", "1"),
			},
		},
	}
	for _, pt := range pts {
		got := Parse([]byte(pt.in))
		want := ir.FromNodes(pt.want...)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseExportOption(t *testing.T) {
	got := Parse([]byte("export KEY=x"), ParseExport())
	v := got.Nodes[0]
	if v.Kind != ir.VarKind || v.Key != "KEY" || v.Value != "x" {
		t.Errorf("got %+v", v)
	}
	got = Parse([]byte("export KEY=x"))
	if got.Nodes[0].Kind != ir.CommentKind {
		t.Errorf("without ParseExport, expected comment, got %v", got.Nodes[0].Kind)
	}
}

func varWith(comments []string, key, value string) *ir.Node {
	v := ir.FromVar(key, value)
	v.Comments = comments
	return v
}
