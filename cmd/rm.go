/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <name>...",
	Short: "Delete items from the catalogue",
	Long: `Removes every reference of each name from every page and drops the
index entry. Deleting an absent name is a no-op, so worklists can be
re-run safely.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRm(args)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(names []string) error {
	col, _, cat, shape, err := loadCollection()
	if err != nil {
		return err
	}

	for _, name := range names {
		cat.Delete(name)
		logger.Info("item deleted", zap.String("name", name))
	}

	if err := saveCollection(col, cat, shape); err != nil {
		return err
	}

	fmt.Printf("Deleted %d item(s); %d unique items remain.\n", len(names), len(cat.Index))
	return nil
}
