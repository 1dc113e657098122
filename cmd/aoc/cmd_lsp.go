package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/aoc/lsp"
)

func newLSPCmd() *cobra.Command {
	var rf ruleFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for game files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := rf.rule(cmd)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, rule)
			return server.RunStdio()
		},
	}
	rf.register(cmd)

	return cmd
}
