package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tng/internal/validator"
	"github.com/aretw0/tng/pkg/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <program>",
	Short: "Check a program for consistency",
	Long:  `Parses the program and reports dead rules and states unreachable from the initial state.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		strict, _ := cmd.Flags().GetBool("strict")
		if err := runValidate(args[0], strict); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Treat warnings as errors")
}

func runValidate(path string, strict bool) error {
	program, err := loader.LoadFile(path)
	if err != nil {
		return err
	}

	warnings := validator.Check(program)
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w.Msg)
	}
	if strict && len(warnings) > 0 {
		return fmt.Errorf("%d warning(s)", len(warnings))
	}

	fmt.Println("Program is valid! ✅")
	return nil
}
