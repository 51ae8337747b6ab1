package catalog

import (
	"os"
	"path/filepath"

	"github.com/nomadlib/curator/internal/types"
)

// Probe reports whether a file exists at path. The reconciler's only
// filesystem dependency; moves and copies belong to the organizer.
type Probe func(path string) bool

// OSProbe checks the real filesystem.
func OSProbe(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReconcileResult records what a reconciliation pass changed.
type ReconcileResult struct {
	Kept     int
	Repaired int
	Removed  []string // titles of pruned items
}

// Reconcile verifies every item's backing file, repairs paths that moved to
// the deterministic per-category location, prunes items whose file cannot be
// found, and recomputes stats from the survivors. Running it twice on a
// stable filesystem yields identical state.
func Reconcile(cat *types.Catalog, baseDir string, probe Probe) ReconcileResult {
	if probe == nil {
		probe = OSProbe
	}

	var result ReconcileResult
	kept := make([]types.CatalogItem, 0, len(cat.Items))

	for _, item := range cat.Items {
		if item.Path != "" && probe(item.Path) {
			kept = append(kept, item)
			continue
		}

		fallback := filepath.ToSlash(filepath.Join(baseDir, string(item.Category), item.Filename))
		if probe(fallback) {
			item.Path = fallback
			result.Repaired++
			kept = append(kept, item)
			continue
		}

		result.Removed = append(result.Removed, item.Title)
	}

	cat.Items = kept
	cat.Stats = ComputeStats(kept)
	SortItems(cat.Items)
	result.Kept = len(kept)
	return result
}
