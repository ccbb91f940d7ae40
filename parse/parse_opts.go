package parse

import (
	"github.com/envfold/go-envfold/token"
)

type parseOpts struct {
	export bool
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.export {
		return []token.TokenOpt{token.StripExport()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// ParseExport accepts `export KEY=value` lines as assignments.
func ParseExport() ParseOption {
	return func(o *parseOpts) { o.export = true }
}
