package format

import (
	"io"

	"github.com/dhamidi/vb6parse/vb6/parser"
)

// TextEncoder writes the indented node dump, one node per line.
type TextEncoder struct {
	w         io.Writer
	positions bool
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

// WithPositions makes the encoder append each node's span to its line.
func (e *TextEncoder) WithPositions() *TextEncoder {
	e.positions = true
	return e
}

func (e *TextEncoder) Encode(tree *parser.Tree) error {
	out := tree.Dump()
	if e.positions {
		out = tree.DumpWithPositions()
	}
	_, err := io.WriteString(e.w, out)
	return err
}
