package token

import (
	"regexp"
	"strings"
)

type LineType int

const (
	TBlank LineType = iota
	TComment
	TVar
)

func (t LineType) String() string {
	switch t {
	case TBlank:
		return "Blank"
	case TComment:
		return "Comment"
	case TVar:
		return "Var"
	}
	return "<unknown line type>"
}

// Line is one classified physical line of an env source.
type Line struct {
	Type LineType

	// Text is the original untrimmed line. It is retained for all line
	// types so unrecognized content survives as comments.
	Text string

	// Key and Value are set for TVar lines only. Value is decoded: quotes
	// stripped and escapes processed per Decode.
	Key   string
	Value string
}

// varLine matches an assignment with a valid identifier key. Whitespace
// around '=' is tolerated; the raw value keeps any trailing whitespace for
// Decode to trim.
var varLine = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*)$`)

// Tokenize splits src on \r?\n and classifies each physical line. It is
// total: lines that are neither blank nor valid assignments become comment
// lines. Classified lines are appended to dst.
func Tokenize(dst []Line, src []byte, opts ...TokenOpt) []Line {
	ts := &tkState{}
	for _, f := range opts {
		f(ts)
	}
	raw := strings.Split(string(src), "\n")
	for _, text := range raw {
		text = strings.TrimSuffix(text, "\r")
		dst = append(dst, classify(text, ts))
	}
	return dst
}

func classify(text string, ts *tkState) Line {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Line{Type: TBlank, Text: text}
	}
	if strings.HasPrefix(trimmed, "#") {
		return Line{Type: TComment, Text: text}
	}
	probe := trimmed
	if ts.stripExport {
		if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
			probe = strings.TrimSpace(rest)
		}
	}
	m := varLine.FindStringSubmatch(probe)
	if m == nil {
		// unrecognized content is preserved, not dropped
		return Line{Type: TComment, Text: text}
	}
	return Line{
		Type:  TVar,
		Text:  text,
		Key:   m[1],
		Value: Decode(m[2]),
	}
}
