package format

import (
	"io"

	"github.com/dhamidi/pratt/expr/parser"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(node parser.Node) error {
	return write(e.w, e.Marshal, node)
}

func (e *YAMLEncoder) Marshal(node parser.Node) ([]byte, error) {
	return yaml.Marshal(NodeToAST(node))
}
