package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/pipeline"
	"github.com/nomadlib/curator/internal/sources"
)

var fetchCommand = &cobra.Command{
	Use:   "fetch",
	Short: "Download all documents from the source list",
	Long:  "Downloads every URL in the source list into the staging directory, deduplicates downloads by SHA-256 content hash, and writes the download manifest.",
	RunE:  runFetchCmd,
}

var (
	fetchConfigPath  string
	fetchConcurrency int
	fetchVerbose     bool
)

func init() {
	fetchCommand.Flags().StringVar(&fetchConfigPath, "config", "", "Path to config.json file")
	fetchCommand.Flags().IntVar(&fetchConcurrency, "concurrency", 0, "Parallel downloads (defaults to config value)")
	fetchCommand.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print per-document progress")

	rootCmd.AddCommand(fetchCommand)
}

func runFetchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(fetchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = fetchConcurrency
	}

	entries, err := sources.Load(cfg.SourcesPath)
	if err != nil {
		return err
	}

	fmt.Printf("Fetching %d sources into %s...\n", len(entries), cfg.DownloadDir)
	manifest, err := pipeline.RunFetch(context.Background(), pipeline.FetchOptions{
		Sources:     entries,
		DownloadDir: cfg.DownloadDir,
		Client:      newFetchClient(cfg),
		Concurrency: cfg.Concurrency,
		OnProgress:  progressPrinter(fetchVerbose),
	})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if err := catalog.SaveManifest(cfg.ManifestPath, manifest); err != nil {
		return err
	}

	fmt.Printf("Download complete: %d successful, %d failed, %d duplicates (%.2f MB total)\n",
		manifest.Successful, manifest.Failed, manifest.Duplicates, manifest.TotalSizeMB)
	fmt.Printf("Manifest saved to %s\n", cfg.ManifestPath)
	return nil
}
