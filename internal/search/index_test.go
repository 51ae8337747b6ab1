package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadlib/curator/internal/types"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })
	return ix
}

func sampleItems() []types.CatalogItem {
	return []types.CatalogItem{
		{
			ID: "water-purification-guide", Title: "Water Purification Guide",
			Category: types.CategoryWater, Tier: types.TierEssential,
			SizeMB: 1.2, Summary: "Methods for filtering and disinfecting drinking water.",
		},
		{
			ID: "field-surgery-handbook", Title: "Field Surgery Handbook",
			Category: types.CategoryMedicine, Tier: types.TierEssential,
			SizeMB: 8.5, Summary: "Emergency surgical procedures for austere settings.",
		},
		{
			ID: "knots-and-lashings", Title: "Knots and Lashings",
			Category: types.CategorySurvival, Tier: types.TierStandard,
			SizeMB: 0.8, Summary: "Rope work for shelters and water crossings.",
		},
	}
}

func TestRebuildAndSearch(t *testing.T) {
	ix := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, sampleItems()))

	hits, err := ix.Search(ctx, "water", "", 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	ids := []string{hits[0].ID, hits[1].ID}
	assert.Contains(t, ids, "water-purification-guide")
	assert.Contains(t, ids, "knots-and-lashings")
}

func TestSearch_CategoryFilter(t *testing.T) {
	ix := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, sampleItems()))

	hits, err := ix.Search(ctx, "water", types.CategoryWater, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "water-purification-guide", hits[0].ID)
	assert.Equal(t, types.TierEssential, hits[0].Tier)
}

func TestSearch_NoMatches(t *testing.T) {
	ix := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, sampleItems()))

	hits, err := ix.Search(ctx, "nonexistenttoken", "", 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRebuild_ReplacesPreviousContents(t *testing.T) {
	ix := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, sampleItems()))
	require.NoError(t, ix.Rebuild(ctx, sampleItems()[:1]))

	n, err := ix.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	hits, err := ix.Search(ctx, "surgery", "", 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_LimitApplied(t *testing.T) {
	ix := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, sampleItems()))

	hits, err := ix.Search(ctx, "water", "", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}
