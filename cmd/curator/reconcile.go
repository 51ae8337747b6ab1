package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
)

var reconcileCommand = &cobra.Command{
	Use:   "reconcile",
	Short: "Sync the catalog with files on disk",
	Long:  "Verifies every catalog item's backing file, repairs paths for files found at their per-category location, and prunes items whose file is gone. Stats are recomputed from the surviving entries.",
	RunE:  runReconcileCmd,
}

var reconcileConfigPath string

func init() {
	reconcileCommand.Flags().StringVar(&reconcileConfigPath, "config", "", "Path to config.json file")

	rootCmd.AddCommand(reconcileCommand)
}

func runReconcileCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(reconcileConfigPath)
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

	result := catalog.Reconcile(cat, cfg.BaseDir, catalog.OSProbe)

	if err := catalog.Save(cfg.CatalogPath, cat); err != nil {
		return err
	}

	fmt.Printf("Reconciled: %d kept, %d repaired, %d removed\n", result.Kept, result.Repaired, len(result.Removed))
	for _, title := range result.Removed {
		fmt.Printf("  removed: %s\n", title)
	}
	return nil
}
