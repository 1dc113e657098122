package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/aoc/cubes"
	"github.com/dhamidi/aoc/format"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Parse game records and dump the syntax tree as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, filename, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			root, err := cubes.ParseTree(src, filename)
			if err != nil {
				return err
			}

			if err := format.NewCSTJSONEncoder(cmd.OutOrStdout()).Encode(root); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}
}
