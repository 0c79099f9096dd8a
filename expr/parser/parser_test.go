package parser

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// tokens splits a space separated expression into tokens. Fields that are
// not operators become numbers.
func tokens(src string) []Token {
	var result []Token
	for _, field := range strings.Fields(src) {
		if kind, ok := LookupOperator(field); ok {
			result = append(result, NewToken(kind, field))
		} else {
			result = append(result, NewToken(TokenNumber, field))
		}
	}
	return append(result, NewToken(TokenEOF, ""))
}

func TestParseRender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "7"},
		{"1 + 2", "(1+2)"},
		{"1 + 2 * 3", "(1+(2*3))"},
		{"1 * 2 + 3", "((1*2)+3)"},
		{"1 - 2 - 3", "((1-2)-3)"},
		{"8 / 4 / 2", "((8/4)/2)"},
		{"2 ^ 3 ^ 4", "(2^(3^4))"},
		{"2 * 3 ^ 2", "(2*(3^2))"},
		{"3 ! - 2", "((3!)-2)"},
		{"3 ! !", "((3!)!)"},
		{"2 ^ 3 !", "(2^(3!))"},
		{"( 2 - 3 ) * 6", "((2-3)*6)"},
		{"( ( 1 ) )", "1"},
		{"- 1", "(-1)"},
		{"+ 1", "(+1)"},
		{"- - 1", "(-(-1))"},
		{"- 1 + 2", "((-1)+2)"},
		{"- 2 * 3", "(-(2*3))"},
		{"- 3 !", "(-(3!))"},
		{"2 * - 3", "(2*(-3))"},
		{"2 ^ - 3", "(2^(-3))"},
		{
			"- 1 + ( 2 - 3 ) * 6 / 3 ! - 2 ^ 3 ^ 4",
			"(((-1)+(((2-3)*6)/(3!)))-(2^(3^4)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseTokens(tokens(tt.input))
			if err != nil {
				t.Fatalf("ParseTokens(%q) error: %v", tt.input, err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	node, err := ParseTokens(tokens("1 + 2 * 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, ok := node.(*InfixOpNode)
	if !ok {
		t.Fatalf("root = %T, want *InfixOpNode", node)
	}
	if root.Operator != "+" {
		t.Errorf("root operator = %q, want %q", root.Operator, "+")
	}
	if left, ok := root.Left.(*ValueNode); !ok || left.Value != 1 {
		t.Errorf("left = %v, want 1", root.Left)
	}
	right, ok := root.Right.(*InfixOpNode)
	if !ok || right.Operator != "*" {
		t.Fatalf("right = %v, want (2*3)", root.Right)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []Token
		want  ErrorKind
	}{
		{
			name:  "missing rparen",
			input: []Token{NewToken(TokenLParen, ""), NewToken(TokenNumber, "2"), NewToken(TokenEOF, "")},
			want:  ErrUnbalancedParenthesis,
		},
		{
			name:  "lone rparen",
			input: []Token{NewToken(TokenRParen, ""), NewToken(TokenEOF, "")},
			want:  ErrUnexpectedPrefixToken,
		},
		{"empty input", tokens(""), ErrUnexpectedPrefixToken},
		{"dangling operator", tokens("1 +"), ErrUnexpectedPrefixToken},
		{"infix in prefix position", tokens("* 2"), ErrUnexpectedPrefixToken},
		{"postfix in prefix position", tokens("! 2"), ErrUnexpectedPrefixToken},
		{"wrong closer", tokens("( 1 + 2 !"), ErrUnbalancedParenthesis},
		{"malformed number", []Token{NewToken(TokenNumber, "12a"), NewToken(TokenEOF, "")}, ErrMalformedNumber},
		{"overflowing number", tokens("99999999999999999999"), ErrMalformedNumber},
		{"trailing rparen", tokens("1 + 2 )"), ErrTrailingTokens},
		{"two operands", tokens("1 2"), ErrTrailingTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseTokens(tt.input)
			if err == nil {
				t.Fatalf("got %s, want error %v", node, tt.want)
			}
			if node != nil {
				t.Errorf("got partial tree %s alongside error", node)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if perr.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", perr.Kind, tt.want)
			}
		})
	}
}

func TestParseMalformedNumberUnwraps(t *testing.T) {
	_, err := ParseTokens([]Token{NewToken(TokenNumber, "x"), NewToken(TokenEOF, "")})
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error = %v, want it to wrap strconv.ErrSyntax", err)
	}
}

func TestParseStopsAtWeakerOperator(t *testing.T) {
	p := New(tokens("1 * 2 + 3"))
	node, err := p.Parse(PrecSum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := node.String(); got != "(1*2)" {
		t.Errorf("got %s, want (1*2)", got)
	}
	tok, ok := p.stream.Peek()
	if !ok || tok.Kind != TokenPlus {
		t.Errorf("next token = %v, want +", tok)
	}
}

func TestParseWithoutEOF(t *testing.T) {
	input := []Token{NewToken(TokenNumber, "1"), NewToken(TokenPlus, "")}
	_, err := ParseTokens(input)
	if !errors.Is(err, ErrUnexpectedPrefixToken) {
		t.Errorf("error = %v, want %v", err, ErrUnexpectedPrefixToken)
	}
	if len(input) != 2 {
		t.Errorf("input was modified: %v", input)
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := strings.Repeat("( ", 50) + "1" + strings.Repeat(" )", 50)

	if _, err := ParseTokens(tokens(deep), WithMaxDepth(10)); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("error = %v, want %v", err, ErrDepthExceeded)
	}
	node, err := ParseTokens(tokens(deep), WithMaxDepth(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := node.String(); got != "1" {
		t.Errorf("got %s, want 1", got)
	}

	prefixes := strings.Repeat("- ", DefaultMaxDepth+1) + "1"
	if _, err := ParseTokens(tokens(prefixes)); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("error = %v, want %v", err, ErrDepthExceeded)
	}
}

func TestParseDepthResets(t *testing.T) {
	p := New(tokens("( ( 1 ) ) + ( ( 2 ) )"), WithMaxDepth(4))
	node, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := node.String(); got != "(1+2)" {
		t.Errorf("got %s, want (1+2)", got)
	}
	if p.depth != 0 {
		t.Errorf("depth = %d after parse, want 0", p.depth)
	}
}

func TestParseErrorMessage(t *testing.T) {
	tok := Token{
		Kind: TokenRParen,
		Span: Span{Start: Position{Offset: 4, Line: 1, Column: 5}},
	}
	err := newError(ErrUnexpectedPrefixToken, tok)
	want := "1:5: unexpected prefix token )"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	err = newError(ErrUnbalancedParenthesis, Token{Kind: TokenEOF})
	want = "unbalanced parenthesis: expected ), got EOF"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
