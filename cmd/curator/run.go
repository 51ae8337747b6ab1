package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/observability"
	"github.com/nomadlib/curator/internal/pipeline"
	"github.com/nomadlib/curator/internal/sources"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full library pipeline",
	Long:  "Fetches every source, optionally retries failures with recovery strategies, classifies and summarizes the results, organizes files into category directories, reconciles the catalog against disk, and rebuilds the search index.",
	RunE:  runRunCmd,
}

var (
	runConfigPath  string
	runConcurrency int
	runRetry       bool
	runVerbose     bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file")
	runCommand.Flags().IntVar(&runConcurrency, "concurrency", 0, "Concurrent downloads (0 uses config value)")
	runCommand.Flags().BoolVar(&runRetry, "retry", true, "Retry failed downloads with recovery strategies")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print per-item progress")

	rootCmd.AddCommand(runCommand)
}

func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = runConcurrency
	}

	entries, err := sources.Load(cfg.SourcesPath)
	if err != nil {
		return err
	}

	summary, err := pipeline.RunAll(cmd.Context(), pipeline.RunOptions{
		Sources:      entries,
		BaseDir:      cfg.BaseDir,
		DownloadDir:  cfg.DownloadDir,
		CatalogPath:  cfg.CatalogPath,
		ManifestPath: cfg.ManifestPath,
		IndexPath:    cfg.IndexPath,
		Client:       newFetchClient(cfg),
		Concurrency:  cfg.Concurrency,
		Retry:        runRetry,
		OnProgress:   progressPrinter(runVerbose),
	})
	if err != nil {
		return err
	}

	if runVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintManifest(summary.Manifest)
		printer.PrintExclusions(summary.Report.Excluded)
		printer.PrintStats(summary.Catalog.Stats)
	}

	m := summary.Manifest
	fmt.Printf("\nRun complete:\n")
	fmt.Printf("  downloads: %d successful, %d failed, %d duplicates (%.2f MB)\n",
		m.Successful, m.Failed, m.Duplicates, m.TotalSizeMB)
	fmt.Printf("  catalog:   %d items across %d categories\n",
		summary.Catalog.Stats.TotalPDFs, len(summary.Catalog.Stats.Categories))
	if len(summary.Report.Excluded) > 0 {
		fmt.Printf("  excluded:  %d items\n", len(summary.Report.Excluded))
	}
	fmt.Printf("  organized: %d files moved", summary.Organized.Moved)
	if len(summary.Organized.Missing) > 0 {
		fmt.Printf(" (%d missing)", len(summary.Organized.Missing))
	}
	fmt.Println()
	fmt.Printf("  reconcile: %d kept, %d repaired, %d removed\n",
		summary.Reconcile.Kept, summary.Reconcile.Repaired, len(summary.Reconcile.Removed))
	return nil
}
