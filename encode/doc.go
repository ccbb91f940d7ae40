// Package encode encodes IR documents back to env file text.
//
// # Usage
//
//	// Encode to text
//	doc := ir.FromNodes(ir.FromVar("DB_HOST", "localhost"))
//	text := encode.String(doc)
//
//	// Encode to a writer, with colors
//	err := encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// Line-level rendering
//	lines := encode.Lines(doc)
//
// Encoding is the deterministic inverse of parsing: variables expand to
// their comment lines followed by key=value with quoting applied, comment
// groups expand to their lines, and blank nodes to one empty line. Output
// always uses LF line endings.
//
// # Related Packages
//
//   - github.com/envfold/go-envfold/ir - IR representation
//   - github.com/envfold/go-envfold/parse - Parse text to IR
package encode
