package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/pipeline"
)

var retryCommand = &cobra.Command{
	Use:   "retry",
	Short: "Retry failed downloads with recovery strategies",
	Long:  "Re-attempts every failure recorded in the manifest using host-specific strategies: the Google Drive confirmation flow, Referer headers for hotlink-protected hosts, and the Wayback Machine for dead domains. Recovered documents are folded back into the manifest.",
	RunE:  runRetryCmd,
}

var (
	retryConfigPath string
	retryVerbose    bool
)

func init() {
	retryCommand.Flags().StringVar(&retryConfigPath, "config", "", "Path to config.json file")
	retryCommand.Flags().BoolVarP(&retryVerbose, "verbose", "v", false, "Print per-document progress")

	rootCmd.AddCommand(retryCommand)
}

func runRetryCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(retryConfigPath)
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

	if len(manifest.Failures) == 0 {
		fmt.Println("No failures to retry.")
		return nil
	}

	fmt.Printf("Retrying %d failed downloads...\n", len(manifest.Failures))
	before := manifest.Successful
	if err := pipeline.RunRetry(context.Background(), manifest, pipeline.FetchOptions{
		DownloadDir: cfg.DownloadDir,
		Client:      newFetchClient(cfg),
		OnProgress:  progressPrinter(retryVerbose),
	}); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	if err := catalog.SaveManifest(cfg.ManifestPath, manifest); err != nil {
		return err
	}

	fmt.Printf("Retry complete: %d newly successful, %d still failed\n",
		manifest.Successful-before, manifest.Failed)
	return nil
}
