package main

import (
	"fmt"

	"github.com/dhamidi/rex/expr/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expression]",
		Short: "Tokenize an expression and dump the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := expressionArg(args)
			if err != nil {
				return err
			}

			tokens, err := parser.Tokenize([]byte(input), "")
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			for _, tok := range tokens {
				fmt.Printf("%s\t%s\t%q\n", tok.Span.Start, tok.Kind, tok.Literal)
			}
			return nil
		},
	}
}
