package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pratt/expr/parser"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node parser.Node) error {
	return write(e.w, e.Marshal, node)
}

func (e *ASTJSONEncoder) Marshal(node parser.Node) ([]byte, error) {
	text, err := json.MarshalIndent(NodeToAST(node), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

// AST mirrors a parser.Node for serialization.
type AST struct {
	Kind     string `json:"kind" yaml:"kind"`
	Operator string `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value    *int64 `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*AST `json:"children,omitempty" yaml:"children,omitempty"`
}

// NodeToAST converts a tree to its serializable mirror. A nil node gives
// nil.
func NodeToAST(n parser.Node) *AST {
	if n == nil {
		return nil
	}

	an := &AST{
		Kind:     parser.KindName(n),
		Operator: parser.Operator(n),
	}
	if v, ok := n.(*parser.ValueNode); ok {
		value := v.Value
		an.Value = &value
	}

	children := parser.Children(n)
	if len(children) > 0 {
		an.Children = make([]*AST, len(children))
		for i, child := range children {
			an.Children[i] = NodeToAST(child)
		}
	}

	return an
}
