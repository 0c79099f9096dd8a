package parser

import "strconv"

// DefaultMaxDepth bounds how deeply Parse may recurse before giving up
// with ErrDepthExceeded.
const DefaultMaxDepth = 256

type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth. Values below one fall back
// to DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		p.maxDepth = depth
	}
}

type (
	prefixFunc  func(p *Parser, tok Token) (Node, error)
	infixFunc   func(p *Parser, left Node, tok Token) (Node, error)
	postfixFunc func(p *Parser, left Node, tok Token) (Node, error)
)

// Parser is a Pratt parser over a single token sequence. It is not safe
// for concurrent use; build one parser per input.
type Parser struct {
	stream   *TokenStream
	prefix   [numTokenKinds]prefixFunc
	infix    [numTokenKinds]infixFunc
	postfix  [numTokenKinds]postfixFunc
	depth    int
	maxDepth int
}

func New(tokens []Token, opts ...Option) *Parser {
	p := &Parser{
		stream:   NewTokenStream(tokens),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registerPrefix(TokenNumber, parseNumber)
	p.registerPrefix(TokenPlus, parsePrefixOp)
	p.registerPrefix(TokenMinus, parsePrefixOp)
	p.registerPrefix(TokenLParen, parseGroup)

	p.registerInfix(TokenPlus, parseInfixOp)
	p.registerInfix(TokenMinus, parseInfixOp)
	p.registerInfix(TokenStar, parseInfixOp)
	p.registerInfix(TokenSlash, parseInfixOp)
	p.registerInfix(TokenCaret, parseRightAssocOp)

	p.registerPostfix(TokenBang, parsePostfixOp)

	return p
}

// ParseTokens parses tokens as one complete expression.
func ParseTokens(tokens []Token, opts ...Option) (Node, error) {
	return New(tokens, opts...).ParseExpression()
}

func (p *Parser) registerPrefix(kind TokenKind, fn prefixFunc) {
	p.prefix[kind] = fn
}

func (p *Parser) registerInfix(kind TokenKind, fn infixFunc) {
	p.infix[kind] = fn
}

func (p *Parser) registerPostfix(kind TokenKind, fn postfixFunc) {
	p.postfix[kind] = fn
}

// ParseExpression parses a whole expression and requires the input to end
// right after it.
func (p *Parser) ParseExpression() (Node, error) {
	node, err := p.Parse(PrecLowest)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.stream.Peek(); ok && tok.Kind != TokenEOF {
		return nil, newError(ErrTrailingTokens, tok)
	}
	return node, nil
}

// Parse parses an expression whose operators all bind tighter than
// minPrecedence and leaves the first weaker operator in the stream.
func (p *Parser) Parse(minPrecedence int) (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, newError(ErrDepthExceeded, p.current())
	}

	tok, ok := p.stream.Next()
	if !ok {
		tok = Token{Kind: TokenEOF}
	}
	prefix := p.prefixFor(tok.Kind)
	if prefix == nil {
		return nil, newError(ErrUnexpectedPrefixToken, tok)
	}
	left, err := prefix(p, tok)
	if err != nil {
		return nil, err
	}

	for p.peekPrecedence() > minPrecedence {
		tok, _ = p.stream.Next()
		if infix := p.infixFor(tok.Kind); infix != nil {
			left, err = infix(p, left, tok)
		} else if postfix := p.postfixFor(tok.Kind); postfix != nil {
			left, err = postfix(p, left, tok)
		} else {
			return nil, newError(ErrUnexpectedInfixToken, tok)
		}
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) current() Token {
	if tok, ok := p.stream.Peek(); ok {
		return tok
	}
	return Token{Kind: TokenEOF}
}

func (p *Parser) peekPrecedence() int {
	tok, ok := p.stream.Peek()
	if !ok {
		return PrecLowest
	}
	return BindingPowerOf(tok.Kind)
}

func (p *Parser) prefixFor(kind TokenKind) prefixFunc {
	if !kind.Valid() {
		return nil
	}
	return p.prefix[kind]
}

func (p *Parser) infixFor(kind TokenKind) infixFunc {
	if !kind.Valid() {
		return nil
	}
	return p.infix[kind]
}

func (p *Parser) postfixFor(kind TokenKind) postfixFunc {
	if !kind.Valid() {
		return nil
	}
	return p.postfix[kind]
}

func parseNumber(p *Parser, tok Token) (Node, error) {
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &ParseError{Kind: ErrMalformedNumber, Token: tok, Err: err}
	}
	return &ValueNode{Value: value}, nil
}

func parsePrefixOp(p *Parser, tok Token) (Node, error) {
	operand, err := p.Parse(BindingPowerOf(tok.Kind))
	if err != nil {
		return nil, err
	}
	return &PrefixOpNode{Operator: tok.Kind.String(), Operand: operand}, nil
}

// Parentheses only steer grouping; they do not appear in the tree.
func parseGroup(p *Parser, tok Token) (Node, error) {
	inner, err := p.Parse(PrecLowest)
	if err != nil {
		return nil, err
	}
	closing, ok := p.stream.Next()
	if !ok {
		closing = Token{Kind: TokenEOF}
	}
	if closing.Kind != TokenRParen {
		return nil, newError(ErrUnbalancedParenthesis, closing)
	}
	return inner, nil
}

func parseInfixOp(p *Parser, left Node, tok Token) (Node, error) {
	right, err := p.Parse(BindingPowerOf(tok.Kind))
	if err != nil {
		return nil, err
	}
	return &InfixOpNode{Operator: tok.Kind.String(), Left: left, Right: right}, nil
}

// The right operand is parsed one step below the operator's own binding
// power so that an equal operator to the right nests inside it.
func parseRightAssocOp(p *Parser, left Node, tok Token) (Node, error) {
	right, err := p.Parse(BindingPowerOf(tok.Kind) - 1)
	if err != nil {
		return nil, err
	}
	return &InfixOpNode{Operator: tok.Kind.String(), Left: left, Right: right}, nil
}

func parsePostfixOp(p *Parser, left Node, tok Token) (Node, error) {
	return &PostfixOpNode{Operator: tok.Kind.String(), Operand: left}, nil
}
