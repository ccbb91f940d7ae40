// Package parse parses env file text into IR documents.
//
// # Usage
//
//	// Parse env text
//	doc := parse.Parse([]byte("# db host\nDB_HOST=localhost\n"))
//
//	// Parse from string
//	doc := parse.ParseString("KEY=value")
//
//	// Parse with options
//	doc := parse.Parse(data, parse.ParseExport())
//
// Parsing is total: it never fails on malformed input. Lines that are
// neither blank nor valid assignments are preserved as comment lines.
//
// # Related Packages
//
//   - github.com/envfold/go-envfold/ir - IR representation
//   - github.com/envfold/go-envfold/encode - Encode IR to text
//   - github.com/envfold/go-envfold/token - Line classification
package parse
