package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/pratt/expr/parser"
)

// TreeEncoder writes one line per node, children indented below their
// parent:
//
//	Infix +
//	  Value 1
//	  Value 2
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node parser.Node) error {
	return write(e.w, e.Marshal, node)
}

func (e *TreeEncoder) Marshal(node parser.Node) ([]byte, error) {
	var b strings.Builder
	parser.Walk(node, func(n parser.Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(parser.KindName(n))
		if v, ok := n.(*parser.ValueNode); ok {
			b.WriteString(" " + strconv.FormatInt(v.Value, 10))
		} else {
			b.WriteString(" " + parser.Operator(n))
		}
		b.WriteByte('\n')
		return true
	})
	return []byte(b.String()), nil
}
