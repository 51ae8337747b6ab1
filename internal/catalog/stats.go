package catalog

import (
	"sort"

	"github.com/nomadlib/curator/internal/types"
)

// ComputeStats aggregates item counts from scratch. Stats is always a pure
// function of the item list; every mutation of items must be followed by a
// recompute, never a hand edit.
func ComputeStats(items []types.CatalogItem) types.Stats {
	categories := make(map[types.Category]int)
	tiers := map[types.Tier]int{
		types.TierEssential:     0,
		types.TierStandard:      0,
		types.TierComprehensive: 0,
	}

	var totalBytes int64
	for _, item := range items {
		categories[item.Category]++
		tiers[item.Tier]++
		totalBytes += item.SizeBytes
	}

	return types.Stats{
		TotalPDFs:   len(items),
		Categories:  categories,
		Tiers:       tiers,
		TotalSizeMB: RoundMB(totalBytes),
	}
}

// SortItems applies the presentation ordering: category (lexicographic),
// then tier (essential, standard, comprehensive), then title (lexicographic).
// This must be reapplied any time items are serialized for display.
func SortItems(items []types.CatalogItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		ti, tj := tierRank(items[i].Tier), tierRank(items[j].Tier)
		if ti != tj {
			return ti < tj
		}
		return items[i].Title < items[j].Title
	})
}

// Unknown tiers sort with standard, matching the download-era default.
func tierRank(t types.Tier) int {
	if rank, ok := types.TierOrder[t]; ok {
		return rank
	}
	return types.TierOrder[types.TierStandard]
}
