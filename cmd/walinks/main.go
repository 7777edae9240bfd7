// Package main provides the walinks CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "walinks",
		Short: "Extract Egyptian mobile numbers from Excel and build WhatsApp links",
		Long: `walinks extracts Egyptian mobile numbers from a spreadsheet column or
from pasted text, normalizes them to +201XXXXXXXXX, builds wa.me links,
and writes the deduplicated result as a two-column workbook.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(newExtractCmd(), newManualCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
