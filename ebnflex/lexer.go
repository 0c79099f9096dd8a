// Package ebnflex provides lexical scanning based on EBNF grammars.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kinds reported for input that is not a grammar token.
const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Token represents a lexical token with its position. End is the position
// just past the last byte of Literal.
type Token struct {
	Kind     string
	Literal  string
	Position Position
	End      Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

type Option func(*Lexer)

// WithTokens restricts the productions tried as tokens to names. When two
// productions match the same length, the one listed first wins.
func WithTokens(names ...string) Option {
	return func(l *Lexer) {
		l.tokens = append([]string(nil), names...)
	}
}

// WithSkip makes the lexer silently skip any byte in chars between tokens.
func WithSkip(chars string) Option {
	return func(l *Lexer) {
		l.skip = chars
	}
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	tokens   []string
	skip     string
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int // match length, -1 = no match
	visiting map[memoKey]bool
}

// NewLexer creates a lexer for the given grammar and input. Without
// WithTokens every production whose name starts with an uppercase letter
// is a token candidate, tried in name order.
func NewLexer(grammar ebnf.Grammar, input []byte, filename string, opts ...Option) *Lexer {
	l := &Lexer{
		grammar:  grammar,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.tokens == nil {
		l.tokens = tokenProductions(grammar)
	}
	return l
}

func tokenProductions(grammar ebnf.Grammar) []string {
	var names []string
	for name, prod := range grammar {
		if prod.Expr == nil || name == "" || name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseGrammar parses an EBNF grammar from r.
func ParseGrammar(filename string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipIgnored() {
	for l.pos < len(l.input) && strings.IndexByte(l.skip, l.input[l.pos]) >= 0 {
		l.advance()
	}
}

// NextToken returns the longest token starting at the current position.
// At the end of input it returns an EOF token together with io.EOF.
// Bytes no token production matches come back one at a time as ERROR
// tokens.
func (l *Lexer) NextToken() (Token, error) {
	l.skipIgnored()

	startPos := l.Position()
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: startPos, End: startPos}, io.EOF
	}

	// positions change between tokens
	l.memo = make(map[memoKey]int)

	var bestKind string
	bestLen := 0
	for _, name := range l.tokens {
		prod, ok := l.grammar[name]
		if !ok || prod.Expr == nil {
			continue
		}
		l.visiting = make(map[memoKey]bool)
		if n, ok := l.tryMatch(prod.Expr, l.pos); ok && n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		_, size := utf8.DecodeRune(l.input[l.pos:])
		literal := string(l.input[l.pos : l.pos+size])
		for i := 0; i < size; i++ {
			l.advance()
		}
		return Token{Kind: KindError, Literal: literal, Position: startPos, End: l.Position()}, nil
	}

	literal := string(l.input[l.pos : l.pos+bestLen])
	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  literal,
		Position: startPos,
		End:      l.Position(),
	}, nil
}

// tryMatch reports the length of the longest match of expr at offset.
// A zero length match is a success for options and repetitions.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := l.tryMatch(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, matched := 0, false
		for _, alt := range e {
			if n, ok := l.tryMatch(alt, offset); ok && (!matched || n > best) {
				best, matched = n, true
			}
		}
		return best, matched

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := l.tryMatch(e.Body, offset+total)
			if !ok || n == 0 {
				break
			}
			total += n
		}
		return total, true

	case *ebnf.Option:
		if n, ok := l.tryMatch(e.Body, offset); ok {
			return n, true
		}
		return 0, true

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return 0, false
	}
}

// tryMatchName matches a named production with memoization and cycle
// detection.
func (l *Lexer) tryMatchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		return result, result >= 0
	}

	// left recursion
	if l.visiting[key] {
		return 0, false
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0, false
	}

	l.visiting[key] = true
	n, ok := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	if !ok {
		l.memo[key] = -1
		return 0, false
	}
	l.memo[key] = n
	return n, true
}

func (l *Lexer) tryMatchToken(token string, offset int) (int, bool) {
	s := strings.Trim(token, "\"")
	if offset+len(s) > len(l.input) {
		return 0, false
	}
	if string(l.input[offset:offset+len(s)]) == s {
		return len(s), true
	}
	return 0, false
}

// tryMatchRange matches one character in a range such as "a" … "z".
func (l *Lexer) tryMatchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(l.input) {
		return 0, false
	}
	lo, _ := utf8.DecodeRuneInString(strings.Trim(begin, "\""))
	hi, _ := utf8.DecodeRuneInString(strings.Trim(end, "\""))
	ch, size := utf8.DecodeRune(l.input[offset:])
	if ch >= lo && ch <= hi {
		return size, true
	}
	return 0, false
}

// Tokenize reads all tokens from input. The last token is always EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
	}
}
