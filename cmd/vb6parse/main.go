package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vb6parse",
		Short: "A lossless VB6 source toolchain",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
