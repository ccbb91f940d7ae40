package token

type tkState struct {
	stripExport bool
}

type TokenOpt func(*tkState)

// StripExport makes the tokenizer accept `export KEY=value` lines as
// variable lines, dropping the prefix. Off by default: without it such
// lines are preserved as comments like any other unrecognized content.
func StripExport() TokenOpt {
	return func(ts *tkState) { ts.stripExport = true }
}
