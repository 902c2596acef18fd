/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsTop int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a catalogue summary",
	Long: `Prints catalogue totals, the category breakdown, the most frequent
items, and items appearing on a single page (often OCR noise worth a
look).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVarP(
		&statsTop,
		"top",
		"n",
		15,
		"number of most frequent items to list",
	)
}

func runStats() error {
	col, _, cat, _, err := loadCollection()
	if err != nil {
		return err
	}

	summary := cat.Summarize(statsTop)
	fmt.Printf("Collection %q: %d unique items across %d pages.\n",
		col.Name, summary.Items, summary.Pages)

	stats := cat.Stats()
	categories := make([]string, 0, len(stats))
	for name := range stats {
		categories = append(categories, name)
	}
	sort.Slice(categories, func(i, j int) bool {
		if stats[categories[i]] != stats[categories[j]] {
			return stats[categories[i]] > stats[categories[j]]
		}
		return categories[i] < categories[j]
	})

	fmt.Println("\nCategory breakdown:")
	for _, c := range categories {
		fmt.Printf("  %s: %d\n", c, stats[c])
	}

	fmt.Println("\nMost frequent items:")
	for i, ic := range summary.Top {
		fmt.Printf("  %2d. %s: %d page(s)\n", i+1, ic.Name, ic.Pages)
	}

	if len(summary.SinglePage) > 0 {
		fmt.Printf("\n%d item(s) appear on a single page:\n", len(summary.SinglePage))
		for _, name := range summary.SinglePage {
			fmt.Printf("  - %s\n", name)
		}
	}
	return nil
}
