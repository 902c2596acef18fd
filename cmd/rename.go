/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename an item across every page",
	Long: `Replaces every reference of the old name with the new one, in the
canonical store and the derived index. If the new name already exists
(under case-insensitive comparison) the two entries are merged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRename(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(oldName, newName string) error {
	col, _, cat, shape, err := loadCollection()
	if err != nil {
		return err
	}

	if err := cat.Rename(oldName, newName); err != nil {
		return err
	}
	logger.Info("item renamed",
		zap.String("old", oldName),
		zap.String("new", newName),
	)

	if err := saveCollection(col, cat, shape); err != nil {
		return err
	}

	fmt.Printf("Renamed %q to %q.\n", oldName, newName)
	return nil
}
