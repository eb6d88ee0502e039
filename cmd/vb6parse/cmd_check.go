package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/vb6parse/vb6/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse VB6 source files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read source file: %w", err)
				}

				_, diags := parser.FromText(filename, string(data))
				for _, d := range diags {
					fmt.Println(d)
				}
				total += len(diags)
			}

			if total > 0 {
				return fmt.Errorf("%d problems", total)
			}
			return nil
		},
	}
}
