package parser

import "fmt"

// ErrorKind classifies a parse failure. Each kind is itself an error, so
// callers can write errors.Is(err, parser.ErrUnbalancedParenthesis).
type ErrorKind int

const (
	ErrUnexpectedPrefixToken ErrorKind = iota + 1
	ErrUnexpectedInfixToken
	ErrUnbalancedParenthesis
	ErrMalformedNumber
	ErrDepthExceeded
	ErrTrailingTokens
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedPrefixToken: "unexpected prefix token",
	ErrUnexpectedInfixToken:  "unexpected infix token",
	ErrUnbalancedParenthesis: "unbalanced parenthesis",
	ErrMalformedNumber:       "malformed number",
	ErrDepthExceeded:         "maximum nesting depth exceeded",
	ErrTrailingTokens:        "unexpected tokens after expression",
}

func (k ErrorKind) Error() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "parse error"
}

func (k ErrorKind) String() string {
	return k.Error()
}

// ParseError reports why a token sequence could not be parsed. Token is
// the token the parser was looking at when it gave up.
type ParseError struct {
	Kind  ErrorKind
	Token Token
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	switch e.Kind {
	case ErrUnexpectedPrefixToken, ErrUnexpectedInfixToken, ErrTrailingTokens:
		msg += " " + e.Token.String()
	case ErrUnbalancedParenthesis:
		msg += ": expected ), got " + e.Token.String()
	case ErrMalformedNumber:
		msg += fmt.Sprintf(" %q", e.Token.Literal)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Token.Span.Start.Line > 0 {
		return e.Token.Span.Start.String() + ": " + msg
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

func newError(kind ErrorKind, tok Token) *ParseError {
	return &ParseError{Kind: kind, Token: tok}
}
