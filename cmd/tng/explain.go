package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tng/internal/cli"
)

var explainCmd = &cobra.Command{
	Use:   "explain <program>",
	Short: "Describe a program",
	Long:  `Renders the program's leading comment block and a summary of its states and rules.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.Explain(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
