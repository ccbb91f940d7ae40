package token

import "testing"

type quoteTest struct {
	in, out string
}

func TestQuote(t *testing.T) {
	qts := []quoteTest{
		{in: "simple", out: "simple"},
		{in: "value with spaces", out: `"value with spaces"`},
		{in: "", out: ""},
		{in: "a=b", out: "a=b"},
		{in: "has#hash", out: `"has#hash"`},
		{in: "line1\nline2", out: `"line1\nline2"`},
		{in: "tab\there", out: `"tab\there"`},
		{in: "cr\rhere", out: `"cr\rhere"`},
		{in: `back\slash`, out: `"back\\slash"`},
		{in: `dquote"inside`, out: `"dquote\"inside"`},
		{in: "squote'inside", out: `"squote'inside"`},
		{in: "http://localhost:5432/db", out: "http://localhost:5432/db"},
	}
	for _, qt := range qts {
		if got := Quote(qt.in); got != qt.out {
			t.Errorf("Quote(%q) = %q, want %q", qt.in, got, qt.out)
		}
	}
}

func TestDecode(t *testing.T) {
	dts := []quoteTest{
		{in: "simple", out: "simple"},
		{in: "  padded  ", out: "padded"},
		{in: `"value with spaces"`, out: "value with spaces"},
		{in: `'single quoted'`, out: "single quoted"},
		// single quotes are literal: no escape processing
		{in: `'a\nb'`, out: `a\nb`},
		{in: `"a\nb"`, out: "a\nb"},
		{in: `"a\tb"`, out: "a\tb"},
		{in: `"a\rb"`, out: "a\rb"},
		{in: `"a\"b"`, out: `a"b`},
		// half-open quotes are not quotes
		{in: `"dangling`, out: `"dangling`},
		{in: `'`, out: `'`},
		{in: `""`, out: ""},
	}
	for _, dt := range dts {
		if got := Decode(dt.in); got != dt.out {
			t.Errorf("Decode(%q) = %q, want %q", dt.in, got, dt.out)
		}
	}
}

func TestQuoteDecodeRoundTrip(t *testing.T) {
	// values without the unescape-ambiguous literal \n, \r, \t sequences
	// must satisfy Decode(Quote(v)) == v
	vals := []string{
		"simple",
		"value with spaces",
		"line1\nline2",
		"tab\there and \r and \"quotes\" and 'single'",
		"#comment-looking",
		"trailing space ",
		" leading space",
		"",
		"=",
		"a=b=c",
	}
	for _, v := range vals {
		if got := Decode(Quote(v)); got != v {
			t.Errorf("Decode(Quote(%q)) = %q", v, got)
		}
	}
}
