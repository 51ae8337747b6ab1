package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/classify"
	"github.com/nomadlib/curator/internal/pdftext"
	"github.com/nomadlib/curator/internal/summary"
)

var summarizeCommand = &cobra.Command{
	Use:   "summarize",
	Short: "Refresh catalog summaries from PDF contents",
	Long:  "Re-reads every cataloged PDF, refines category and tier assignments using the extracted text, and recomposes each summary. Items whose files cannot be read keep a metadata-only summary.",
	RunE:  runSummarizeCmd,
}

var summarizeConfigPath string

func init() {
	summarizeCommand.Flags().StringVar(&summarizeConfigPath, "config", "", "Path to config.json file")

	rootCmd.AddCommand(summarizeCommand)
}

func runSummarizeCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(summarizeConfigPath)
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

	refined := 0
	for i := range cat.Items {
		item := &cat.Items[i]

		path := filepath.FromSlash(item.Path)
		if path == "" {
			path = filepath.Join(cfg.DownloadDir, item.Filename)
		}

		info := pdftext.Inspect(path)
		if info.Pages > 0 {
			item.Pages = info.Pages
		}

		newCategory := item.Category
		if info.Snippet != "" {
			newCategory = classify.RefineCategory(item.Title, info.Snippet, item.Category)
		}
		newTier := classify.RefineScore(item.Title, item.Tier, item.SizeBytes)
		if newCategory != item.Category || newTier != item.Tier {
			refined++
		}
		item.Category = newCategory
		item.Tier = newTier

		item.Summary = summary.Compose(*item, info.Snippet)
	}

	cat.Stats = catalog.ComputeStats(cat.Items)
	catalog.SortItems(cat.Items)

	if err := catalog.Save(cfg.CatalogPath, cat); err != nil {
		return err
	}

	fmt.Printf("Recomposed %d summaries (%d items refined)\n", len(cat.Items), refined)
	return nil
}
