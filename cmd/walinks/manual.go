package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/config"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/logger"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newManualCmd() *cobra.Command {
	var (
		outputPath string
		clickable  bool
	)

	cmd := &cobra.Command{
		Use:   "manual [file]",
		Short: "Extract numbers from pasted text (file or stdin), one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(cfg.Log.Level)

			var text []byte
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			} else {
				text, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			table := phonelinks.ExtractText(string(text))
			if table.Len() == 0 {
				fmt.Println("no valid Egyptian mobile numbers found")
				return nil
			}

			if !cmd.Flags().Changed("clickable") {
				clickable = cfg.Export.ClickableLinks
			}
			out := orDefault(outputPath, cfg.Export.ManualFilename)
			if err := output.WriteXLSXFile(out, table, clickable); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			logger.Log.Info("wrote processed workbook",
				zap.String("path", out), zap.Int("numbers", table.Len()))
			fmt.Printf("found %d valid numbers, wrote %s\n", table.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&clickable, "clickable", true, "Write links as clickable HYPERLINK formulas")

	return cmd
}
