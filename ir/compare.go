package ir

import "strings"

// Equal reports whether two nodes are observationally equal for merge
// deduplication. Blank nodes are always equal to each other, variables are
// equal when key and value match, and comment groups are equal when their
// lines match after joining with newlines and trimming.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case BlankKind:
		return true
	case VarKind:
		return a.Key == b.Key && a.Value == b.Value
	case CommentKind:
		return CommentText(a.Lines) == CommentText(b.Lines)
	}
	return false
}

// CommentText is the canonical form of a comment group used for equality.
func CommentText(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// EqualDoc reports whether two documents have equal node sequences.
func EqualDoc(a, b *Doc) bool {
	if len(a.Nodes) != len(b.Nodes) {
		return false
	}
	for i := range a.Nodes {
		if !Equal(a.Nodes[i], b.Nodes[i]) {
			return false
		}
	}
	return true
}
