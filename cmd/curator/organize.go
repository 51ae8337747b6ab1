package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
)

var organizeCommand = &cobra.Command{
	Use:   "organize",
	Short: "Move downloaded files into category directories",
	Long:  "Moves every cataloged file from the staging directory into its category directory under the library root and records the final path on each catalog item.",
	RunE:  runOrganizeCmd,
}

var organizeConfigPath string

func init() {
	organizeCommand.Flags().StringVar(&organizeConfigPath, "config", "", "Path to config.json file")

	rootCmd.AddCommand(organizeCommand)
}

func runOrganizeCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(organizeConfigPath)
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

	result, err := catalog.Organize(cat, cfg.DownloadDir, cfg.BaseDir)
	if err != nil {
		return err
	}

	if err := catalog.Save(cfg.CatalogPath, cat); err != nil {
		return err
	}

	fmt.Printf("Organized %d files into %s\n", result.Moved, cfg.BaseDir)
	if len(result.Missing) > 0 {
		fmt.Printf("Missing from staging directory (%d):\n", len(result.Missing))
		for _, name := range result.Missing {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}
