package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/rex/expr"
	"github.com/spf13/cobra"
)

func newRewriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite [expression]",
		Short: "Print the parenthesized, postfix, and prefix forms of an expression",
		Long: `Print the parenthesized, postfix, and prefix forms of an expression.

The expression may contain integer numbers, variable names (letters only),
parentheses, and the operators ^ * / + and -. It must not contain spaces.

If no expression is given, one is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := expressionArg(args)
			if err != nil {
				return err
			}

			forms, err := expr.Rewrite(input)
			if err != nil {
				return fmt.Errorf("rewrite: %w", err)
			}

			fmt.Printf("parenthesized: %s\n", forms.Parenthesized)
			fmt.Printf("postfix:       %s\n", forms.Postfix)
			fmt.Printf("prefix:        %s\n", forms.Prefix)
			return nil
		},
	}
}

// expressionArg returns the expression from args, or from stdin when no
// argument was given. A trailing newline from the terminal is trimmed;
// any other whitespace is left for the lexer to reject.
func expressionArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
