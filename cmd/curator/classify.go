package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/observability"
	"github.com/nomadlib/curator/internal/pipeline"
)

var classifyCommand = &cobra.Command{
	Use:   "classify",
	Short: "Build the catalog from the download manifest",
	Long:  "Screens every manifest item against the exclusion list, deduplicates by content hash, assigns a category, importance tier, and relevance flag, composes summaries, and writes the catalog.",
	RunE:  runClassifyCmd,
}

var (
	classifyConfigPath string
	classifyNoInspect  bool
	classifyVerbose    bool
)

func init() {
	classifyCommand.Flags().StringVar(&classifyConfigPath, "config", "", "Path to config.json file")
	classifyCommand.Flags().BoolVar(&classifyNoInspect, "no-inspect", false, "Skip PDF content inspection (classify on titles and sizes only)")
	classifyCommand.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Print per-document progress")

	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(classifyConfigPath)
	if err != nil {
		return err
	}

	if err := checkSchema("manifest.schema.json", cfg.ManifestPath); err != nil {
		return err
	}
	manifest, err := catalog.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return err
	}

	downloadDir := cfg.DownloadDir
	if classifyNoInspect {
		downloadDir = ""
	}

	fmt.Printf("Classifying %d documents...\n", len(manifest.Items))
	cat, report, err := pipeline.BuildCatalog(manifest, pipeline.ClassifyOptions{
		DownloadDir: downloadDir,
		OnProgress:  progressPrinter(classifyVerbose),
	})
	if err != nil {
		return err
	}

	if err := catalog.Save(cfg.CatalogPath, cat); err != nil {
		return err
	}

	fmt.Printf("Classification complete: %d accepted, %d duplicates, %d excluded, %d low relevance\n",
		report.Accepted, report.Duplicates, len(report.Excluded), report.LowRelevance)
	for _, ex := range report.Excluded {
		fmt.Printf("  excluded: %s (matched %q)\n", ex.Title, ex.Matched)
	}

	if classifyVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintItems(cat.Items)
		printer.PrintExclusions(report.Excluded)
		printer.PrintStats(cat.Stats)
	}

	fmt.Printf("Catalog saved to %s (%d items, %.2f MB)\n",
		cfg.CatalogPath, cat.Stats.TotalPDFs, cat.Stats.TotalSizeMB)
	return nil
}
