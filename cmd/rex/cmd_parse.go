package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/rex/expr/parser"
	"github.com/dhamidi/rex/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and dump the parse tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := expressionArg(args)
			if err != nil {
				return err
			}

			p := parser.ParseExpression(strings.NewReader(input))
			node, err := p.Finish()
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			switch outputFormat {
			case "json":
				enc := format.NewTreeJSONEncoder(os.Stdout)
				if err := enc.Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "text":
				if includePositions {
					fmt.Print(node.StringWithPositions())
				} else {
					fmt.Print(node.String())
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include token positions in text output")

	return cmd
}
