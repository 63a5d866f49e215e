package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tng/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <program>",
	Short: "Execute a program against an input tape",
	Long:  `Loads a program file (.tng or .yaml) and runs it to termination, printing the outcome.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tape, _ := cmd.Flags().GetString("tape")
		budget, _ := cmd.Flags().GetUint64("budget")
		trace, _ := cmd.Flags().GetBool("trace")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			Path:   args[0],
			Tape:   tape,
			Budget: budget,
			Trace:  trace,
			JSON:   jsonMode,
			Debug:  debug,
		}
		if err := cli.Run(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("tape", "t", "", "Initial tape content, one symbol per character ('_' is blank)")
	runCmd.Flags().Uint64("budget", 0, "Step budget (0 uses the default cap)")
	runCmd.Flags().Bool("trace", false, "Print one line per applied step")
	runCmd.Flags().Bool("json", false, "Print the finished run record as JSON")
}
