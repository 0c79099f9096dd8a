package parser

// TokenStream is a forward-only cursor over a token sequence with one
// token of lookahead.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream wraps tokens. A trailing EOF token is appended when the
// sequence does not already end with one.
func NewTokenStream(tokens []Token) *TokenStream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		eof := Token{Kind: TokenEOF}
		if len(tokens) > 0 {
			end := tokens[len(tokens)-1].Span.End
			eof.Span = Span{Start: end, End: end}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without consuming it. The second result
// is false once the stream is exhausted.
func (s *TokenStream) Peek() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos], true
}

// Next returns the current token and advances past it.
func (s *TokenStream) Next() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func (s *TokenStream) Pos() int {
	return s.pos
}

func (s *TokenStream) Len() int {
	return len(s.tokens)
}
