package lsp

import (
	"errors"
	"strings"

	"github.com/dhamidi/pratt/expr/parser"
	"github.com/dhamidi/pratt/expr/scanner"
)

// Problem is a parse failure on one line of a document. Lines and columns
// are zero based, as in the protocol.
type Problem struct {
	Line     int
	StartCol int
	EndCol   int
	Message  string
}

type Analyzer struct {
	opts []parser.Option
}

func NewAnalyzer(opts ...parser.Option) *Analyzer {
	return &Analyzer{opts: opts}
}

func isSkipped(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func (a *Analyzer) parseLine(line string) (parser.Node, error) {
	tokens, err := scanner.ScanString(line)
	if err != nil {
		return nil, err
	}
	return parser.ParseTokens(tokens, a.opts...)
}

// Check parses every expression line of text and reports the failures.
func (a *Analyzer) Check(text string) []Problem {
	var problems []Problem
	for i, line := range splitLines(text) {
		if isSkipped(line) {
			continue
		}
		if _, err := a.parseLine(line); err != nil {
			problems = append(problems, problemFor(i, err))
		}
	}
	return problems
}

// Render returns the canonical form of the expression on line, or false
// when the line is empty, a comment, or does not parse.
func (a *Analyzer) Render(text string, line int) (string, bool) {
	lines := splitLines(text)
	if line < 0 || line >= len(lines) || isSkipped(lines[line]) {
		return "", false
	}
	node, err := a.parseLine(lines[line])
	if err != nil {
		return "", false
	}
	return node.String(), true
}

func problemFor(line int, err error) Problem {
	p := Problem{Line: line, Message: err.Error()}

	var perr *parser.ParseError
	var serr *scanner.Error
	switch {
	case errors.As(err, &perr):
		p.Message = perr.Kind.Error()
		if perr.Kind != parser.ErrMalformedNumber && perr.Kind != parser.ErrDepthExceeded {
			p.Message += ": " + perr.Token.String()
		}
		p.StartCol = perr.Token.Span.Start.Column - 1
		p.EndCol = perr.Token.Span.End.Column - 1
	case errors.As(err, &serr):
		p.Message = "unexpected character " + serr.Literal
		p.StartCol = serr.Pos.Column - 1
		p.EndCol = p.StartCol + len(serr.Literal)
	}

	if p.StartCol < 0 {
		p.StartCol = 0
	}
	if p.EndCol <= p.StartCol {
		// zero width tokens such as EOF still get a visible marker
		p.EndCol = p.StartCol + 1
	}
	return p
}
