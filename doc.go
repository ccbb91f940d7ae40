// Package envfold merges env-style configuration files while preserving
// their structure: comments, blank lines, and the relative order of
// variables all survive parsing, merging, and re-serialization.
//
// The pipeline is parse -> merge -> encode:
//
//	a := parse.Parse(aBytes)
//	b := parse.Parse(bBytes)
//	merged := envfold.Merge(a, b)
//	out := encode.String(merged)
//
// Merging is idempotent and never mutates its inputs; later documents win
// on conflicting keys.
package envfold
