package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/pratt/expr"
	"github.com/dhamidi/pratt/format"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var inputFile string

	cmd := &cobra.Command{
		Use:   "parse [expression...]",
		Short: "Parse expressions and print their syntax trees",
		Long: `Parse one or more arithmetic expressions and print the result.

Expressions are taken from the arguments, each argument being one
expression. Without arguments, expressions are read one per line from
--file or from stdin. Blank lines and lines starting with # are skipped.

Output formats: text (fully parenthesized), tree, json, yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if len(args) > 0 {
				if inputFile != "" {
					return fmt.Errorf("--file cannot be combined with expression arguments")
				}
				lines := make([]numberedLine, len(args))
				for i, text := range args {
					lines[i] = numberedLine{number: i + 1, text: text}
				}
				return a.parseAll(cmd, enc, "", lines)
			}

			var r io.Reader = cmd.InOrStdin()
			name := "<stdin>"
			if inputFile != "" {
				f, err := os.Open(inputFile)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				r, name = f, inputFile
			}

			lines, err := readExpressions(r)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			return a.parseAll(cmd, enc, name, lines)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().StringVarP(&inputFile, "file", "i", "", "read expressions from this file, one per line")

	return cmd
}

type numberedLine struct {
	number int
	text   string
}

func readExpressions(r io.Reader) ([]numberedLine, error) {
	var lines []numberedLine
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, numberedLine{number: n, text: text})
	}
	return lines, sc.Err()
}

// parseAll parses and prints every line. A failing line is reported on
// stderr and does not stop the others.
func (a *app) parseAll(cmd *cobra.Command, enc format.Encoder, source string, lines []numberedLine) error {
	failed := 0
	for _, line := range lines {
		node, err := expr.Parse(line.text, a.parserOptions()...)
		if err != nil {
			failed++
			location := fmt.Sprintf("expression %d", line.number)
			if source != "" {
				location = fmt.Sprintf("%s:%d", source, line.number)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", location, err)
			log.Infof("%s: %q failed: %s", location, line.text, err)
			continue
		}
		if err := enc.Encode(node); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	if failed > 0 {
		return errors.New(pluralize(failed, "expression") + " failed to parse")
	}
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
