package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/vb6parse/vb6/parser"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Tokenize a VB6 source file and list its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tokens, diags := parser.Tokenize(filename, string(data))
			for _, tok := range tokens {
				fmt.Printf("%s\t%s\t%q\n", tok.Span.Start, tok.Kind, tok.Literal)
			}

			for _, d := range diags {
				fmt.Fprintln(os.Stderr, d)
			}

			return nil
		},
	}
}
