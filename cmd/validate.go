/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the derived index against the canonical store",
	Long: `Recomputes the transpose of the page→items store and reports every
divergence from the persisted index. Nothing is repaired; run rebuild
to accept the recomputed index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() error {
	col, _, cat, _, err := loadCollection()
	if err != nil {
		return err
	}

	divs, err := cat.Validate()
	if err == nil {
		fmt.Printf("Collection %q is consistent: %d items, %d pages.\n",
			col.Name, len(cat.Index), len(cat.Pages))
		return nil
	}

	fmt.Printf("Collection %q has %d divergence(s):\n", col.Name, len(divs))
	for _, d := range divs {
		fmt.Printf("  %s\n", d)
	}
	return err
}
