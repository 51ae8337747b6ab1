package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadlib/curator/internal/types"
)

func mapProbe(existing ...string) Probe {
	set := make(map[string]bool, len(existing))
	for _, p := range existing {
		set[p] = true
	}
	return func(path string) bool { return set[path] }
}

func testCatalog() *types.Catalog {
	return &types.Catalog{
		Generated: "2026-01-01T00:00:00Z",
		Items: []types.CatalogItem{
			{
				ID: "a", Title: "A", Filename: "a.pdf",
				Category: types.CategorySurvival, Tier: types.TierEssential,
				SizeBytes: 1024 * 1024, Path: "pdfs/survival/a.pdf",
			},
			{
				ID: "b", Title: "B", Filename: "b.pdf",
				Category: types.CategoryMedicine, Tier: types.TierStandard,
				SizeBytes: 2 * 1024 * 1024,
			},
			{
				ID: "c", Title: "C", Filename: "c.pdf",
				Category: types.CategoryMedicine, Tier: types.TierStandard,
				SizeBytes: 4 * 1024 * 1024, Path: "pdfs/wrong/c.pdf",
			},
		},
	}
}

func TestReconcile_KeepsRepairsAndPrunes(t *testing.T) {
	cat := testCatalog()
	probe := mapProbe(
		"pdfs/survival/a.pdf", // A: recorded path is valid
		"pdfs/medicine/b.pdf", // B: no path, found at fallback
		// C: neither the recorded path nor the fallback exists
	)

	result := Reconcile(cat, "pdfs", probe)

	assert.Equal(t, 2, result.Kept)
	assert.Equal(t, 1, result.Repaired)
	assert.Equal(t, []string{"C"}, result.Removed)

	require.Len(t, cat.Items, 2)
	b := ItemByID(cat, "b")
	require.NotNil(t, b)
	assert.Equal(t, "pdfs/medicine/b.pdf", b.Path)
}

func TestReconcile_RecomputesStats(t *testing.T) {
	cat := testCatalog()
	// Seed stats with garbage; reconcile must rebuild them from items.
	cat.Stats = types.Stats{TotalPDFs: 99, TotalSizeMB: 9999}

	Reconcile(cat, "pdfs", mapProbe("pdfs/survival/a.pdf"))

	assert.Equal(t, 1, cat.Stats.TotalPDFs)
	assert.Equal(t, 1, cat.Stats.Categories[types.CategorySurvival])
	assert.InDelta(t, 1.0, cat.Stats.TotalSizeMB, 0.001)
}

func TestReconcile_Idempotent(t *testing.T) {
	probe := mapProbe("pdfs/survival/a.pdf", "pdfs/medicine/b.pdf")

	cat := testCatalog()
	Reconcile(cat, "pdfs", probe)
	first := *cat
	firstItems := append([]types.CatalogItem(nil), cat.Items...)

	second := Reconcile(cat, "pdfs", probe)

	assert.Equal(t, firstItems, cat.Items)
	assert.Equal(t, first.Stats, cat.Stats)
	assert.Empty(t, second.Removed)
	assert.Zero(t, second.Repaired)
}

func TestReconcile_AppliesSortContract(t *testing.T) {
	cat := &types.Catalog{Items: []types.CatalogItem{
		{ID: "s", Title: "S", Filename: "s.pdf", Category: types.CategorySurvival, Tier: types.TierStandard, Path: "x/s.pdf"},
		{ID: "m", Title: "M", Filename: "m.pdf", Category: types.CategoryMedicine, Tier: types.TierComprehensive, Path: "x/m.pdf"},
		{ID: "m2", Title: "A", Filename: "m2.pdf", Category: types.CategoryMedicine, Tier: types.TierEssential, Path: "x/m2.pdf"},
	}}

	Reconcile(cat, "x", mapProbe("x/s.pdf", "x/m.pdf", "x/m2.pdf"))

	assert.Equal(t, "m2", cat.Items[0].ID)
	assert.Equal(t, "m", cat.Items[1].ID)
	assert.Equal(t, "s", cat.Items[2].ID)
}

func TestReconcile_EmptyCatalog(t *testing.T) {
	cat := &types.Catalog{}
	result := Reconcile(cat, "pdfs", mapProbe())
	assert.Zero(t, result.Kept)
	assert.Empty(t, result.Removed)
	assert.Equal(t, 0, cat.Stats.TotalPDFs)
}
