package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/rex/expr/parser"
)

// TreeJSONEncoder dumps the parse tree itself as indented JSON, for
// tooling that wants the raw grammar structure rather than a notation.
type TreeJSONEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(node *parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.node, "", "  ")
}
