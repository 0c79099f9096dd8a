package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dhamidi/pratt/expr/scanner"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Print the tokens the scanner produces for an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := scanner.ScanString(strings.Join(args, " "))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tok := range tokens {
				fmt.Fprintf(tw, "%s-%s\t%s\t%q\n", tok.Span.Start, tok.Span.End, tok.Kind, tok.Literal)
			}
			return tw.Flush()
		},
	}
}
