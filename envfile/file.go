// Package envfile provides the file-system collaborators around the core
// parse/merge/encode pipeline: reading and writing env files and managing
// backups of merge destinations.
package envfile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/envfold/go-envfold/debug"
	"github.com/envfold/go-envfold/encode"
	"github.com/envfold/go-envfold/ir"
	"github.com/envfold/go-envfold/parse"
)

// Load reads and parses the env file at path.
func Load(path string, opts ...parse.ParseOption) (*ir.Doc, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	if debug.File() {
		debug.Logf("loaded %q (%d bytes)\n", path, len(d))
	}
	return parse.Parse(d, opts...), nil
}

// Write serializes doc to the file at path, replacing its contents. The
// serialized text is written as-is followed by a final newline when the
// document does not already end in a blank node.
func Write(path string, doc *ir.Doc) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := encode.Encode(doc, bw); err != nil {
		f.Close()
		return err
	}
	if n := len(doc.Nodes); n > 0 && doc.Nodes[n-1].Kind != ir.BlankKind {
		if _, err := bw.WriteString("\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
