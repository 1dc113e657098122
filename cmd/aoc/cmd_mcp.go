package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/aoc/mcptool"
)

func newMCPCmd() *cobra.Command {
	var rf ruleFlags

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the solver as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := rf.rule(cmd)
			if err != nil {
				return err
			}
			return mcptool.NewServer(version, rule).ServeStdio()
		},
	}
	rf.register(cmd)

	return cmd
}
