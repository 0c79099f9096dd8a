// Package grammar holds the EBNF description of the expression language.
//
// Lowercase productions are lexical helpers, the capitalized productions
// from Number to RParen are the tokens the scanner produces, and the
// remaining productions describe the accepted expressions. Operator
// precedence is not encoded here; the parser's binding powers decide the
// shape of the tree.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/dhamidi/pratt/ebnflex"
	"golang.org/x/exp/ebnf"
)

// Start is the start production of the embedded grammar.
const Start = "Expression"

// Filename is the name reported in grammar diagnostics.
const Filename = "expression.ebnf"

//go:embed expression.ebnf
var source []byte

// Tokens lists the token productions in the order the scanner tries them.
var Tokens = []string{
	"Number",
	"Plus",
	"Minus",
	"Star",
	"Slash",
	"Caret",
	"Bang",
	"LParen",
	"RParen",
}

// Source returns the embedded grammar text.
func Source() []byte {
	return bytes.Clone(source)
}

var load = sync.OnceValues(func() (ebnf.Grammar, error) {
	g, err := Parse(Filename, bytes.NewReader(source))
	if err != nil {
		return nil, err
	}
	if err := Verify(g, Start); err != nil {
		return nil, err
	}
	return g, nil
})

// Load returns the parsed and verified embedded grammar. The result is
// shared and must not be modified.
func Load() (ebnf.Grammar, error) {
	return load()
}

// Parse reads a grammar from r.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	return ebnflex.ParseGrammar(filename, r)
}

// Verify checks that every production is defined and reachable from start
// and that every token production the scanner relies on is present.
func Verify(g ebnf.Grammar, start string) error {
	if err := ebnf.Verify(g, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	for _, name := range Tokens {
		if _, ok := g[name]; !ok {
			return fmt.Errorf("verify grammar: missing token production %s", name)
		}
	}
	return nil
}
