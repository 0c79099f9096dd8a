package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "pratt",
		Short:             "Parse arithmetic expressions with a Pratt parser",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $PRATT_CONFIG or ./pratt.toml)")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&a.logFile, "log", "", "write logs to this file instead of stderr")
	flags.IntVar(&a.maxDepth, "max-depth", 0, "maximum expression nesting depth")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newUICmd(a))

	return rootCmd
}
