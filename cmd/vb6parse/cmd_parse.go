package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/vb6parse/format"
	"github.com/dhamidi/vb6parse/vb6/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a VB6 source file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tree, diags := parser.FromText(filename, string(data))

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				enc := format.NewTextEncoder(os.Stdout)
				if includePositions {
					enc = enc.WithPositions()
				}
				encoder = enc
			case "source":
				encoder = format.NewSourceEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			for _, d := range diags {
				fmt.Fprintln(os.Stderr, d)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, source)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include source positions in text output")

	return cmd
}
