// Package expr parses arithmetic expressions written as text.
//
// It glues package scanner, which produces tokens, to package parser,
// which builds the syntax tree:
//
//	node, err := expr.Parse("1 + 2 * 3")
//	fmt.Println(node) // (1+(2*3))
package expr

import (
	"fmt"

	"github.com/dhamidi/pratt/expr/parser"
	"github.com/dhamidi/pratt/expr/scanner"
)

// Parse scans and parses src as a single expression.
func Parse(src string, opts ...parser.Option) (parser.Node, error) {
	return ParseBytes([]byte(src), "", opts...)
}

// ParseBytes is Parse for a named input. file only shows up in scan
// errors.
func ParseBytes(src []byte, file string, opts ...parser.Option) (parser.Node, error) {
	tokens, err := scanner.Scan(src, file)
	if err != nil {
		return nil, err
	}
	node, err := parser.ParseTokens(tokens, opts...)
	if err != nil {
		if file != "" {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return nil, err
	}
	return node, nil
}

// Canonical parses src and returns its fully parenthesized form.
func Canonical(src string, opts ...parser.Option) (string, error) {
	node, err := Parse(src, opts...)
	if err != nil {
		return "", err
	}
	return node.String(), nil
}
