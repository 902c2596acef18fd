package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Another0Noob/lookbook-index/internal/catalog"
	"github.com/Another0Noob/lookbook-index/internal/config"
	"github.com/Another0Noob/lookbook-index/internal/lexicon"
	"github.com/Another0Noob/lookbook-index/internal/store"
)

var (
	cfgFile string
	debug   bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lookbook-index",
	Short: "Curate a clothing catalogue extracted from lookbook scans",
	Long: `lookbook-index maintains the item catalogue of a scanned outfit
lookbook: the page→items store, its derived item→pages index, and the
cleanup operations (rename, merge, delete, rebuild, validate) that keep
the two permanently consistent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to collection config file",
	)
	rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.PersistentFlags().BoolVar(
		&debug,
		"debug",
		false,
		"enable debug logging",
	)
}

// loadCollection opens the configured collection: config, lexicon and
// the catalog pair as persisted.
func loadCollection() (config.Collection, *lexicon.Lexicon, *catalog.Catalog, store.Shape, error) {
	col, err := config.Load(cfgFile)
	if err != nil {
		return col, nil, nil, 0, err
	}

	lex := lexicon.Default()
	if col.Lexicon != "" {
		lex, err = lexicon.Load(col.Lexicon)
		if err != nil {
			return col, nil, nil, 0, err
		}
	}

	cat, shape, err := store.Load(store.Paths{Pages: col.Pages, Index: col.Index, Stats: col.Stats})
	if err != nil {
		return col, nil, nil, 0, err
	}

	logger.Debug("collection loaded",
		zap.String("collection", col.Name),
		zap.Int("pages", len(cat.Pages)),
		zap.Int("items", len(cat.Index)),
		zap.String("shape", shape.String()),
	)
	return col, lex, cat, shape, nil
}

func saveCollection(col config.Collection, cat *catalog.Catalog, shape store.Shape) error {
	if err := store.Save(store.Paths{Pages: col.Pages, Index: col.Index, Stats: col.Stats}, cat, shape); err != nil {
		return err
	}
	logger.Info("collection saved",
		zap.String("collection", col.Name),
		zap.Int("pages", len(cat.Pages)),
		zap.Int("items", len(cat.Index)),
	)
	return nil
}
