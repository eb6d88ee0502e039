package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/vb6parse/vb6/parser"
)

// JSONEncoder writes the tree as indented JSON, kinds by name and token
// literals verbatim.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree *parser.Tree) error {
	text, err := e.MarshalText(tree)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText(tree *parser.Tree) ([]byte, error) {
	return json.MarshalIndent(tree, "", "  ")
}
