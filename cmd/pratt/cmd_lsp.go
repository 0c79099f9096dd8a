package main

import (
	"github.com/dhamidi/pratt/lsp"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, a.parserOptions()...)
			return server.RunStdio()
		},
	}
}
