package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/attclean/attclean-go/internal/config"
	"github.com/attclean/attclean-go/pkg/attclean"
	"github.com/attclean/attclean-go/pkg/attclean/output"
	"github.com/spf13/cobra"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

type cleanFlags struct {
	outputPath string
	lookahead  int
	preview    int
	asJSON     bool
	pretty     bool
}

func newCleanCmd() *cobra.Command {
	var flags cleanFlags

	cmd := &cobra.Command{
		Use:   "clean [input.xlsx]",
		Short: "Clean a workbook and write the unified table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cmd.Flags().Changed("lookahead") {
				flags.lookahead = cfg.Lookahead
			}
			return runClean(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output workbook path (default: attendance_cleaned_<date>.xlsx)")
	cmd.Flags().IntVar(&flags.lookahead, "lookahead", 10, "Leading rows scanned for EmpCode/Name labels")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print a JSON preview to stdout instead of writing a workbook")
	cmd.Flags().IntVar(&flags.preview, "preview", 0, "Rows included in the JSON preview (0: all)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runClean(cmd *cobra.Command, inputPath string, flags cleanFlags) error {
	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	table, err := attclean.Clean(data, attclean.Options{Lookahead: flags.lookahead})
	if errors.Is(err, attclean.ErrNoData) {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	if err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}

	if flags.asJSON {
		jsonData, err := output.ToJSON(table, flags.preview, flags.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}

	xlsxData, err := output.ToXLSX(table)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	outputPath := flags.outputPath
	if outputPath == "" {
		outputPath = output.DownloadName(time.Now())
	}
	if err := os.WriteFile(outputPath, xlsxData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d rows -> %s\n", table.Len(), outputPath)
	return nil
}
