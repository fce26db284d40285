package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/rex/expr"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".rex_history"
	prompt      = ">> "
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively rewrite expressions",
		Long: `Read expressions one per line and print the fully-parenthesized,
postfix, and prefix forms of each. Ctrl+C cancels input, Ctrl+D exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	fmt.Println("Enter an arithmetic expression in infix form. It may contain integer")
	fmt.Println("numbers, variable names, parentheses, and the operators ^ * / + and -.")
	fmt.Println("The expression must not contain any spaces. Example: (a+3)+var^(b+282*c)")
	fmt.Println()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			fmt.Println()
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D.
			fmt.Println()
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		forms, err := expr.Rewrite(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Printf("parenthesized: %s\n", forms.Parenthesized)
		fmt.Printf("postfix:       %s\n", forms.Postfix)
		fmt.Printf("prefix:        %s\n\n", forms.Prefix)
		ln.AppendHistory(input)
	}
}
