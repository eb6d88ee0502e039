// Package format renders parsed VB6 trees for output: as an indented node
// dump, as JSON, or back into the original source text.
package format

import (
	"github.com/dhamidi/vb6parse/vb6/parser"
)

type Encoder interface {
	Encode(tree *parser.Tree) error
}
