package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadlib/curator/internal/types"
)

func validArtifact() types.RetrievedArtifact {
	return types.RetrievedArtifact{
		Title:       "FM 21-76 US Army Survival Manual",
		Filename:    "FM-21-76-US-Army-Survival-Manual.pdf",
		Source:      "trueprepper",
		OriginalURL: "https://example.com/fm-21-76.pdf",
		SHA256:      "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		SizeBytes:   5_000_000,
	}
}

func TestNewItem(t *testing.T) {
	item := NewItem(validArtifact(), types.CategorySurvival, types.TierEssential, types.RelevanceHigh, "summary text")

	assert.Equal(t, "fm-21-76-us-army-survival-manual", item.ID)
	assert.Equal(t, types.CategorySurvival, item.Category)
	assert.Equal(t, types.TierEssential, item.Tier)
	assert.InDelta(t, 4.77, item.SizeMB, 0.001)
	assert.Empty(t, item.Path)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog", "catalog.json")

	cat := &types.Catalog{
		Generated: "2026-01-01T00:00:00Z",
		Items: []types.CatalogItem{
			NewItem(validArtifact(), types.CategorySurvival, types.TierEssential, types.RelevanceHigh, "s"),
		},
	}
	cat.Stats = ComputeStats(cat.Items)

	require.NoError(t, Save(path, cat))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cat.Generated, loaded.Generated)
	assert.Equal(t, cat.Stats.TotalPDFs, loaded.Stats.TotalPDFs)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, cat.Items[0], loaded.Items[0])
}

func TestLoad_MalformedJSONIsFatal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoad_InvalidItemIsFatal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.json")
	// Item is missing required fields (title, filename, sha256).
	payload := `{"generated":"x","stats":{"total_pdfs":1,"categories":{},"tiers":{},"total_size_mb":0},"items":[{"id":"a","tier":"standard"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	_, err := Load(path)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadManifest_MalformedIsFatal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestLoadManifest_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.json")

	m := &types.Manifest{
		DownloadDate: "2026-01-01T00:00:00Z",
		TotalURLs:    1,
		Successful:   1,
		Items:        []types.RetrievedArtifact{validArtifact()},
	}
	require.NoError(t, SaveManifest(path, m))

	loaded, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, m.Items[0].SHA256, loaded.Items[0].SHA256)
}

func TestOrganize_MovesAndRecordsPath(t *testing.T) {
	tmpDir := t.TempDir()
	downloadDir := filepath.Join(tmpDir, "_downloads")
	baseDir := filepath.Join(tmpDir, "pdfs")
	require.NoError(t, os.MkdirAll(downloadDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(downloadDir, "a.pdf"), []byte("%PDF-1.4"), 0644))

	cat := &types.Catalog{Items: []types.CatalogItem{
		{ID: "a", Title: "A", Filename: "a.pdf", Category: types.CategorySurvival, Tier: types.TierStandard, SHA256: "x"},
		{ID: "b", Title: "B", Filename: "b.pdf", Category: types.CategoryMedicine, Tier: types.TierStandard, SHA256: "y"},
	}}

	result, err := Organize(cat, downloadDir, baseDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Moved)
	assert.Equal(t, []string{"b.pdf"}, result.Missing)

	moved := filepath.Join(baseDir, "survival", "a.pdf")
	assert.FileExists(t, moved)
	assert.NoFileExists(t, filepath.Join(downloadDir, "a.pdf"))
	assert.Equal(t, filepath.ToSlash(moved), cat.Items[0].Path)
}

func TestOrganize_AlreadyMovedIsRepaired(t *testing.T) {
	tmpDir := t.TempDir()
	downloadDir := filepath.Join(tmpDir, "_downloads")
	baseDir := filepath.Join(tmpDir, "pdfs")
	dest := filepath.Join(baseDir, "survival", "a.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0755))
	require.NoError(t, os.WriteFile(dest, []byte("%PDF-1.4"), 0644))

	cat := &types.Catalog{Items: []types.CatalogItem{
		{ID: "a", Title: "A", Filename: "a.pdf", Category: types.CategorySurvival, Tier: types.TierStandard, SHA256: "x"},
	}}

	result, err := Organize(cat, downloadDir, baseDir)
	require.NoError(t, err)
	assert.Zero(t, result.Moved)
	assert.Empty(t, result.Missing)
	assert.Equal(t, filepath.ToSlash(dest), cat.Items[0].Path)
}
