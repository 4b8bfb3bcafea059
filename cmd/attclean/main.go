// Package main provides the CLI entry point for attclean.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attclean",
		Short: "Clean biometric attendance exports",
		Long: `attclean finds the attendance table inside every sheet of a biometric
device export, tags each row with the employee code and name, and writes
one flat workbook.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCleanCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
