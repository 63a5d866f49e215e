package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tng"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tng",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tng version %s\n", strings.TrimSpace(tng.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
