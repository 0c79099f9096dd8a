package grammar

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := g[Start]; !ok {
		t.Errorf("grammar has no %s production", Start)
	}
	for _, name := range Tokens {
		if _, ok := g[name]; !ok {
			t.Errorf("grammar has no token production %s", name)
		}
	}
}

func TestVerifyRejects(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"undefined production", `Expression = Operand .`},
		{"unused production", string(Source()) + "\nExtra = \"?\" .\n"},
		{"missing token", `Expression = Number . Number = "0" … "9" .`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse("bad.ebnf", strings.NewReader(tt.source))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if err := Verify(g, Start); err == nil {
				t.Error("Verify succeeded, want error")
			}
		})
	}
}

func TestSourceIsCopy(t *testing.T) {
	src := Source()
	src[0] = '#'
	if Source()[0] == '#' {
		t.Error("Source returned the shared buffer")
	}
}
