package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "pratt.toml")
	if err := os.WriteFile(cfg, []byte("[output]\nformat = \"text\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PRATT_CONFIG", cfg)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseArgs(t *testing.T) {
	out, _, err := run(t, "", "parse", "1 + 2 * 3", "2^3^4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "(1+(2*3))\n(2^(3^4))\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestParseStdin(t *testing.T) {
	input := "# comment\n3! - 2\n\n(2 - 3) * 6\n"
	out, _, err := run(t, input, "parse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "((3!)-2)\n((2-3)*6)\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestParseFileWithErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.expr")
	if err := os.WriteFile(path, []byte("1 + 1\n(2\n)\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, errOut, err := run(t, "", "parse", "--file", path)
	if err == nil || !strings.Contains(err.Error(), "2 expressions failed") {
		t.Errorf("error = %v, want 2 failures", err)
	}
	if out != "(1+1)\n" {
		t.Errorf("stdout = %q, want the valid expression", out)
	}
	if !strings.Contains(errOut, path+":2: ") || !strings.Contains(errOut, path+":3: ") {
		t.Errorf("stderr does not name the failing lines:\n%s", errOut)
	}
}

func TestParseFormats(t *testing.T) {
	out, _, err := run(t, "", "parse", "-f", "tree", "1+2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Infix +\n  Value 1\n  Value 2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	if _, _, err := run(t, "", "parse", "-f", "xml", "1"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseMaxDepthFlag(t *testing.T) {
	_, errOut, err := run(t, "", "--max-depth", "2", "parse", "((1))")
	if err == nil {
		t.Fatal("expected depth failure")
	}
	if !strings.Contains(errOut, "depth") {
		t.Errorf("stderr = %q, want depth error", errOut)
	}
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "", "tokens", "12+3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Number") || !strings.Contains(lines[0], `"12"`) {
		t.Errorf("first line = %q, want Number \"12\"", lines[0])
	}
	if !strings.Contains(lines[3], "EOF") {
		t.Errorf("last line = %q, want EOF", lines[3])
	}
}

func TestGrammar(t *testing.T) {
	out, _, err := run(t, "", "grammar", "check")
	if err != nil {
		t.Fatalf("grammar check: %v", err)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("got %q, want ok", out)
	}

	out, _, err = run(t, "", "grammar", "print")
	if err != nil {
		t.Fatalf("grammar print: %v", err)
	}
	if !strings.HasPrefix(out, "Expression") {
		t.Errorf("grammar print = %q, want the grammar source", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.ebnf")
	if err := os.WriteFile(bad, []byte("Expression = Missing .\n"), 0o644); err != nil {
		t.Fatalf("write grammar: %v", err)
	}
	_, errOut, err := run(t, "", "grammar", "check", bad)
	if err == nil {
		t.Error("expected verification failure")
	}
	if !strings.Contains(errOut, "Missing") {
		t.Errorf("stderr = %q, want it to mention Missing", errOut)
	}
}
