package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/aoc/config"
	"github.com/dhamidi/aoc/cubes"
	"github.com/dhamidi/aoc/format"
)

// ruleFlags binds --max-red, --max-green and --max-blue. Flags that are set
// override the environment, which overrides the defaults.
type ruleFlags struct {
	red, green, blue uint32
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32Var(&f.red, "max-red", cubes.DefaultRule.MaxRed, "red cubes in the bag")
	cmd.Flags().Uint32Var(&f.green, "max-green", cubes.DefaultRule.MaxGreen, "green cubes in the bag")
	cmd.Flags().Uint32Var(&f.blue, "max-blue", cubes.DefaultRule.MaxBlue, "blue cubes in the bag")
}

func (f *ruleFlags) rule(cmd *cobra.Command) (cubes.Rule, error) {
	var rule cubes.Rule
	if err := config.ParseEnv(&rule, "CUBES_"); err != nil {
		return cubes.Rule{}, err
	}
	if cmd.Flags().Changed("max-red") {
		rule.MaxRed = f.red
	}
	if cmd.Flags().Changed("max-green") {
		rule.MaxGreen = f.green
	}
	if cmd.Flags().Changed("max-blue") {
		rule.MaxBlue = f.blue
	}
	return rule, nil
}

func newCubesCmd() *cobra.Command {
	var rf ruleFlags
	var part int
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "cubes [file]",
		Short: "Sum the IDs of possible games and the powers of minimum bags",
		Long: `Read game records from a file, or standard input when no file is given.

Part 1 prints the sum of the IDs of games possible with the bag.
Part 2 prints the sum of the powers of each game's minimum bag.
Without --part both are printed.

Environment variables:
  AOC_CUBES_MAX_RED, AOC_CUBES_MAX_GREEN, AOC_CUBES_MAX_BLUE - bag content (default 12, 13, 14)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if part < 0 || part > 2 {
				return fmt.Errorf("unknown part: %d (expected 1 or 2)", part)
			}

			rule, err := rf.rule(cmd)
			if err != nil {
				return err
			}

			src, filename, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			log := commonlog.GetLogger("aoc")
			log.Infof("checking %s against %s", filename, rule)

			games, err := cubes.ParseGames(src, filename)
			if err != nil {
				return err
			}
			report, err := cubes.Analyze(games, rule)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			log.Debugf("%d games, %d feasible sum, %d power sum", len(report.Games), report.FeasibleSum, report.PowerSum)

			out := cmd.OutOrStdout()
			switch part {
			case 1:
				_, err = fmt.Fprintln(out, report.FeasibleSum)
				return err
			case 2:
				_, err = fmt.Fprintln(out, report.PowerSum)
				return err
			}

			enc, err := format.NewReportEncoder(outputFormat, out)
			if err != nil {
				return err
			}
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	rf.register(cmd)
	cmd.Flags().IntVarP(&part, "part", "p", 0, "print only the answer to part 1 or 2")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, line, json)")

	return cmd
}

// readInput reads the file named by the only argument, or standard input.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return data, args[0], nil
}
