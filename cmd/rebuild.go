/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rebuildCmd represents the rebuild command
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Recompute the item→pages index from the canonical store",
	Long: `Recomputes the derived index from scratch. This is the canonical
way to restore consistency after bulk edits of the page→items file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRebuild()
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild() error {
	col, _, cat, shape, err := loadCollection()
	if err != nil {
		return err
	}

	cat.Rebuild()
	if err := saveCollection(col, cat, shape); err != nil {
		return err
	}

	fmt.Printf("Rebuilt index: %d unique items across %d pages.\n", len(cat.Index), len(cat.Pages))
	return nil
}
