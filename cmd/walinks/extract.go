package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/config"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/logger"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/output"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newExtractCmd() *cobra.Command {
	var (
		sheet      string
		column     string
		outputPath string
		clickable  bool
		listSheets bool
	)

	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract numbers from a spreadsheet column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(cfg.Log.Level)

			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			if listSheets {
				f, err := excelize.OpenFile(inputPath)
				if err != nil {
					return fmt.Errorf("error reading file: %w", err)
				}
				defer f.Close()
				for _, name := range phonelinks.SheetNames(f) {
					fmt.Println(name)
				}
				return nil
			}

			opts := phonelinks.Options{
				Sheet:  orDefault(sheet, cfg.Extract.Sheet),
				Column: orDefault(column, cfg.Extract.Column),
			}

			table, err := phonelinks.ExtractFile(inputPath, opts)
			if errors.Is(err, phonelinks.ErrTooFewColumns) {
				return fmt.Errorf("the sheet has fewer than two columns; pass --column to pick the one holding phone numbers")
			}
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			if table.Len() == 0 {
				fmt.Println("no valid Egyptian mobile numbers found")
				return nil
			}

			if !cmd.Flags().Changed("clickable") {
				clickable = cfg.Export.ClickableLinks
			}
			out := orDefault(outputPath, cfg.Export.UploadFilename)
			if err := output.WriteXLSXFile(out, table, clickable); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			logger.Log.Info("wrote processed workbook",
				zap.String("path", out), zap.Int("numbers", table.Len()))
			fmt.Printf("found %d valid numbers, wrote %s\n", table.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name to read (default: first sheet)")
	cmd.Flags().StringVar(&column, "column", "", "Column header name or 1-based index (default: second column)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&clickable, "clickable", true, "Write links as clickable HYPERLINK formulas")
	cmd.Flags().BoolVar(&listSheets, "list-sheets", false, "List sheet names and exit")

	return cmd
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
