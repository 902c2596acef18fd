/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mergeTarget string

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge --into <target-name> <name>...",
	Short: "Merge duplicate items into one canonical name",
	Long: `Retargets every given name to the target as a single atomic batch:
either all names are merged and the index rebuilt, or nothing changes.
Pages referencing both a source and the target end up with a single
reference.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(args, mergeTarget)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(
		&mergeTarget,
		"into",
		"t",
		"",
		"canonical name to merge into",
	)
	mergeCmd.MarkFlagRequired("into")
}

func runMerge(names []string, target string) error {
	col, _, cat, shape, err := loadCollection()
	if err != nil {
		return err
	}

	if err := cat.Merge(names, target); err != nil {
		return err
	}
	logger.Info("items merged",
		zap.Strings("sources", names),
		zap.String("target", target),
	)

	if err := saveCollection(col, cat, shape); err != nil {
		return err
	}

	fmt.Printf("Merged %d item(s) into %q; now on %d page(s).\n",
		len(names), target, len(cat.Index[target]))
	return nil
}
