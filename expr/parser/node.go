package parser

import "strconv"

// A Node is an expression in the syntax tree. The set of node types is
// closed; String returns the fully parenthesized form of the expression.
type Node interface {
	String() string
	node()
}

// ValueNode is a literal operand.
type ValueNode struct {
	Value int64
}

// PrefixOpNode applies a unary prefix operator (+ or -).
type PrefixOpNode struct {
	Operator string
	Operand  Node
}

// InfixOpNode applies a binary operator (+ - * / ^).
type InfixOpNode struct {
	Operator string
	Left     Node
	Right    Node
}

// PostfixOpNode applies a unary postfix operator (!).
type PostfixOpNode struct {
	Operator string
	Operand  Node
}

func (*ValueNode) node()     {}
func (*PrefixOpNode) node()  {}
func (*InfixOpNode) node()   {}
func (*PostfixOpNode) node() {}

func (n *ValueNode) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *PrefixOpNode) String() string {
	return "(" + n.Operator + n.Operand.String() + ")"
}

func (n *InfixOpNode) String() string {
	return "(" + n.Left.String() + n.Operator + n.Right.String() + ")"
}

func (n *PostfixOpNode) String() string {
	return "(" + n.Operand.String() + n.Operator + ")"
}

// Render returns the canonical form of n, or the empty string for nil.
func Render(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// Children returns the direct operands of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *PrefixOpNode:
		return []Node{n.Operand}
	case *InfixOpNode:
		return []Node{n.Left, n.Right}
	case *PostfixOpNode:
		return []Node{n.Operand}
	}
	return nil
}

// Walk visits n and its descendants pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range Children(n) {
		walk(child, depth+1, fn)
	}
}

// KindName names the node variant, e.g. "Infix".
func KindName(n Node) string {
	switch n.(type) {
	case *ValueNode:
		return "Value"
	case *PrefixOpNode:
		return "Prefix"
	case *InfixOpNode:
		return "Infix"
	case *PostfixOpNode:
		return "Postfix"
	}
	return "Unknown"
}

// Operator returns the operator lexeme of n, or "" for values.
func Operator(n Node) string {
	switch n := n.(type) {
	case *PrefixOpNode:
		return n.Operator
	case *InfixOpNode:
		return n.Operator
	case *PostfixOpNode:
		return n.Operator
	}
	return ""
}
