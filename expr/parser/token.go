package parser

import "fmt"

type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenBang
	TokenLParen
	TokenRParen

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	TokenEOF:    "EOF",
	TokenNumber: "Number",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenCaret:  "^",
	TokenBang:   "!",
	TokenLParen: "(",
	TokenRParen: ")",
}

func (k TokenKind) String() string {
	if k >= 0 && k < numTokenKinds {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is one of the kinds the grammar knows about.
func (k TokenKind) Valid() bool {
	return k >= 0 && k < numTokenKinds
}

type Token struct {
	Kind    TokenKind
	Literal string
	Span    Span
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return fmt.Sprintf("Number(%s)", t.Literal)
	}
	return t.Kind.String()
}

// NewToken builds a token without position information. Operator and
// delimiter kinds get their canonical literal.
func NewToken(kind TokenKind, literal string) Token {
	if literal == "" && kind != TokenEOF && kind != TokenNumber {
		literal = kind.String()
	}
	return Token{Kind: kind, Literal: literal}
}

var operatorKinds = map[string]TokenKind{
	"+": TokenPlus,
	"-": TokenMinus,
	"*": TokenStar,
	"/": TokenSlash,
	"^": TokenCaret,
	"!": TokenBang,
	"(": TokenLParen,
	")": TokenRParen,
}

// LookupOperator maps an operator or delimiter lexeme to its kind.
func LookupOperator(lexeme string) (TokenKind, bool) {
	kind, ok := operatorKinds[lexeme]
	return kind, ok
}
