// Package format writes expression trees in the output formats supported
// by the command line and the playground.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/pratt/expr/parser"
)

type Encoder interface {
	Encode(node parser.Node) error
	Marshal(node parser.Node) ([]byte, error)
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"text", "tree", "json", "yaml"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text", "":
		return NewTextEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w), nil
	case "json":
		return NewASTJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

func write(w io.Writer, m func(parser.Node) ([]byte, error), node parser.Node) error {
	text, err := m(node)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

// TextEncoder writes the canonical, fully parenthesized rendering.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node parser.Node) error {
	return write(e.w, e.Marshal, node)
}

func (e *TextEncoder) Marshal(node parser.Node) ([]byte, error) {
	return []byte(parser.Render(node) + "\n"), nil
}
