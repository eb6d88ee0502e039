package format

import (
	"io"

	"github.com/dhamidi/vb6parse/vb6/parser"
)

// SourceEncoder writes the original source text back out. Because every
// token is kept in the tree, the output is byte-identical to the input.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(tree *parser.Tree) error {
	_, err := io.WriteString(e.w, tree.Text())
	return err
}
