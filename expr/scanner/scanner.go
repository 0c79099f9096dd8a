// Package scanner turns expression source text into the token sequence
// consumed by package parser.
package scanner

import (
	"fmt"

	"github.com/dhamidi/pratt/ebnflex"
	"github.com/dhamidi/pratt/expr/grammar"
	"github.com/dhamidi/pratt/expr/parser"
)

const whitespace = " \t\r\n"

var kinds = map[string]parser.TokenKind{
	"Number": parser.TokenNumber,
	"Plus":   parser.TokenPlus,
	"Minus":  parser.TokenMinus,
	"Star":   parser.TokenStar,
	"Slash":  parser.TokenSlash,
	"Caret":  parser.TokenCaret,
	"Bang":   parser.TokenBang,
	"LParen": parser.TokenLParen,
	"RParen": parser.TokenRParen,
}

// Error reports a character that does not start any token.
type Error struct {
	File    string
	Pos     parser.Position
	Literal string
}

func (e *Error) Error() string {
	loc := e.Pos.String()
	if e.File != "" {
		loc = e.File + ":" + loc
	}
	return fmt.Sprintf("%s: unexpected character %q", loc, e.Literal)
}

// Scan tokenizes src. The returned slice always ends with a single EOF
// token. file is only used in error messages.
func Scan(src []byte, file string) ([]parser.Token, error) {
	g, err := grammar.Load()
	if err != nil {
		return nil, err
	}

	lexer := ebnflex.NewLexer(g, src, file,
		ebnflex.WithTokens(grammar.Tokens...),
		ebnflex.WithSkip(whitespace),
	)
	raw, err := lexer.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	tokens := make([]parser.Token, 0, len(raw))
	for _, tok := range raw {
		span := parser.Span{Start: position(tok.Position), End: position(tok.End)}
		switch tok.Kind {
		case ebnflex.KindEOF:
			tokens = append(tokens, parser.Token{Kind: parser.TokenEOF, Span: span})
		case ebnflex.KindError:
			return nil, &Error{File: file, Pos: span.Start, Literal: tok.Literal}
		default:
			kind, ok := kinds[tok.Kind]
			if !ok {
				return nil, &Error{File: file, Pos: span.Start, Literal: tok.Literal}
			}
			tokens = append(tokens, parser.Token{Kind: kind, Literal: tok.Literal, Span: span})
		}
	}
	return tokens, nil
}

// ScanString is Scan for a string without a file name.
func ScanString(src string) ([]parser.Token, error) {
	return Scan([]byte(src), "")
}

func position(p ebnflex.Position) parser.Position {
	return parser.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
