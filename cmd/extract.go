/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Another0Noob/lookbook-index/internal/normalize"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <ocr-text-file>...",
	Short: "Normalize raw OCR text files into the catalogue",
	Long: `Reads one raw OCR text block per file, cleans artifacts, splits
combined entries and classifies every record. The file stem becomes the
page id (page_7.txt -> page_7); existing entries for a page are
replaced. The derived index is rebuilt afterwards.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(files []string) error {
	col, lex, cat, shape, err := loadCollection()
	if err != nil {
		return err
	}

	norm := normalize.New(lex)
	total := 0
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read OCR text %s: %w", file, err)
		}

		pageID := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		items := norm.Parse(string(raw))
		cat.Pages[pageID] = items
		total += len(items)

		logger.Info("page extracted",
			zap.String("page", pageID),
			zap.Int("items", len(items)),
		)
	}

	cat.Rebuild()
	if err := saveCollection(col, cat, shape); err != nil {
		return err
	}

	fmt.Printf("Extracted %d item(s) from %d page(s); %d unique items in catalogue.\n",
		total, len(files), len(cat.Index))
	return nil
}
