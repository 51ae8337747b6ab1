package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nomadlib/curator/internal/search"
	"github.com/nomadlib/curator/internal/types"
)

var searchCommand = &cobra.Command{
	Use:   "search <query>",
	Short: "Query the full-text index",
	Long:  "Runs a full-text query against the search index and prints matching documents ordered by relevance. Use 'curator index' first to build the index.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchCmd,
}

var (
	searchConfigPath string
	searchCategory   string
	searchLimit      int
)

func init() {
	searchCommand.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file")
	searchCommand.Flags().StringVar(&searchCategory, "category", "", "Restrict results to one category")
	searchCommand.Flags().IntVar(&searchLimit, "limit", search.DefaultLimit, "Maximum number of results")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(searchConfigPath)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")

	ix, err := search.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer func() { _ = ix.Close() }()

	hits, err := ix.Search(cmd.Context(), query, types.Category(searchCategory), searchLimit)
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		fmt.Printf("No matches for %q\n", query)
		return nil
	}

	fmt.Printf("%d matches for %q:\n", len(hits), query)
	for _, h := range hits {
		fmt.Printf("  [%s/%s] %s (%.2f MB)\n", h.Category, h.Tier, h.Title, h.SizeMB)
		if h.Summary != "" {
			fmt.Printf("      %s\n", h.Summary)
		}
	}
	return nil
}
