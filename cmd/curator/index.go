package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/search"
)

var indexCommand = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the full-text search index from the catalog",
	Long:  "Drops and rebuilds the SQLite FTS index from catalog.json. The index is derived state, so rebuilding is always safe.",
	RunE:  runIndexCmd,
}

var indexConfigPath string

func init() {
	indexCommand.Flags().StringVar(&indexConfigPath, "config", "", "Path to config.json file")

	rootCmd.AddCommand(indexCommand)
}

func runIndexCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(indexConfigPath)
	if err != nil {
		return err
	}

	if err := checkSchema("catalog.schema.json", cfg.CatalogPath); err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	ix, err := search.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer func() { _ = ix.Close() }()

	if err := ix.Rebuild(cmd.Context(), cat.Items); err != nil {
		return err
	}

	count, err := ix.Count(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Indexed %d documents into %s\n", count, cfg.IndexPath)
	return nil
}
