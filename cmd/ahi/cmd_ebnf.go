package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/dhamidi/aoc/ebnf/grammar"
	"github.com/dhamidi/aoc/ebnf/lex"
)

// errReported is returned after the errors have already been printed.
var errReported = errors.New("errors reported")

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfTokensCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				printErrors(err)
				return errReported
			}

			if err := grammar.Check(g, startProduction); err != nil {
				printErrors(err)
				return errReported
			}

			fmt.Printf("%d productions, %d tokens\n", g.Len(), len(g.Tokens()))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for reachability checks (if empty, unused productions are not reported)")

	return cmd
}

func newEbnfTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokens <grammar> <input>",
		Short:         "Tokenize an input file with the token productions of a grammar",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				printErrors(err)
				return errReported
			}

			input, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tokens, err := lex.NewLexer(g, input, args[1]).Tokenize()
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			var bad int
			for _, tok := range tokens {
				fmt.Printf("%s\t%s\t%q\n", tok.Position, tok.Kind, tok.Literal)
				if tok.Kind == lex.KindError {
					bad++
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d unrecognized characters", bad)
			}
			return nil
		},
	}

	return cmd
}

// printErrors prints one line per error to stderr, flattening joined errors and the
// error lists returned by the grammar parser.
func printErrors(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			printErrors(e)
		}
		return
	}

	if inner := errors.Unwrap(err); inner != nil {
		if v := reflect.ValueOf(inner); v.Kind() == reflect.Slice {
			printErrors(inner)
			return
		}
	}

	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(os.Stderr, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}
