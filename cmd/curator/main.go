// Package main provides the entry point for the offline library curator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Offline survival library curator",
	Long:  "Curator builds and maintains an offline PDF reference library: it fetches documents from a source list, deduplicates them by content hash, classifies them into categories and importance tiers, and keeps the catalog consistent with the files on disk.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
