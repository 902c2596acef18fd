/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Another0Noob/lookbook-index/internal/dedupe"
)

var dupesLimit int

// dupesCmd represents the dupes command
var dupesCmd = &cobra.Command{
	Use:   "dupes",
	Short: "List likely duplicate item pairs",
	Long: `Scans all item names for likely duplicates (case variations,
partial names, fuzzy token matches) and prints a ranked worklist.
Nothing is changed; resolve candidates with merge or rename.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDupes()
	},
}

func init() {
	rootCmd.AddCommand(dupesCmd)

	dupesCmd.Flags().IntVarP(
		&dupesLimit,
		"limit",
		"n",
		20,
		"maximum number of candidate pairs",
	)
}

func runDupes() error {
	_, lex, cat, _, err := loadCollection()
	if err != nil {
		return err
	}

	detector := dedupe.New(lex, dedupe.WithLimit(dupesLimit))
	candidates := detector.Find(cat.Index)

	if len(candidates) == 0 {
		fmt.Println("No duplicate candidates found.")
		return nil
	}

	fmt.Printf("%d duplicate candidate(s):\n", len(candidates))
	for _, c := range candidates {
		fmt.Printf("  %-18s %q (%d page(s)) <-> %q (%d page(s))\n",
			c.Reason, c.Item1, c.Pages1, c.Item2, c.Pages2)
	}
	return nil
}
