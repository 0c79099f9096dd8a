package expr

import (
	"errors"
	"os"
	"testing"

	"github.com/dhamidi/pratt/expr/parser"
	"github.com/dhamidi/pratt/expr/scanner"
	"gopkg.in/yaml.v3"
)

type goldenCase struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Render string `yaml:"render"`
	Error  string `yaml:"error"`
}

func loadCases(t *testing.T) []goldenCase {
	t.Helper()
	data, err := os.ReadFile("testdata/cases.yaml")
	if err != nil {
		t.Fatalf("read cases: %v", err)
	}
	var cases []goldenCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decode cases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no golden cases")
	}
	return cases
}

func TestGolden(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			node, err := Parse(tc.Input)
			if tc.Error != "" {
				var perr *parser.ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("got %v (%v), want parse error %q", node, err, tc.Error)
				}
				if perr.Kind.String() != tc.Error {
					t.Errorf("error kind = %q, want %q", perr.Kind, tc.Error)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.Input, err)
			}
			if got := node.String(); got != tc.Render {
				t.Errorf("got %s, want %s", got, tc.Render)
			}
		})
	}
}

// Rendering is a canonical form: parsing a rendering gives it back.
func TestRoundTrip(t *testing.T) {
	for _, tc := range loadCases(t) {
		if tc.Error != "" {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			first, err := Canonical(tc.Input)
			if err != nil {
				t.Fatalf("Canonical(%q): %v", tc.Input, err)
			}
			second, err := Canonical(first)
			if err != nil {
				t.Fatalf("Canonical(%q): %v", first, err)
			}
			if first != second {
				t.Errorf("round trip changed %s into %s", first, second)
			}
		})
	}
}

func TestParseBytesNamesFile(t *testing.T) {
	_, err := ParseBytes([]byte("(1"), "calc.expr")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, parser.ErrUnbalancedParenthesis) {
		t.Errorf("error = %v, want %v", err, parser.ErrUnbalancedParenthesis)
	}
	if want := "calc.expr: 1:3: unbalanced parenthesis: expected ), got EOF"; err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestParseScanError(t *testing.T) {
	_, err := Parse("1 $ 2")
	var serr *scanner.Error
	if !errors.As(err, &serr) {
		t.Errorf("error = %v, want *scanner.Error", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := Parse("((((1))))", parser.WithMaxDepth(3))
	if !errors.Is(err, parser.ErrDepthExceeded) {
		t.Errorf("error = %v, want %v", err, parser.ErrDepthExceeded)
	}
}
