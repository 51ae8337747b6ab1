package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadlib/curator/internal/fetch"
	"github.com/nomadlib/curator/internal/types"
)

// pdfPayload builds a distinct PDF-looking body per seed.
func pdfPayload(seed string) []byte {
	return []byte("%PDF-1.4\n% " + seed + "\n" + strings.Repeat("x", 256))
}

func testFetchClient() *fetch.Client {
	return fetch.NewClient(&fetch.Options{
		Timeout:    5 * time.Second,
		UserAgent:  fetch.DefaultUserAgent,
		MaxRetries: 0,
	})
}

func newPDFServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/a.pdf", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(pdfPayload("shared"))
	})
	mux.HandleFunc("/b.pdf", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(pdfPayload("shared"))
	})
	mux.HandleFunc("/c.pdf", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(pdfPayload("unique"))
	})
	mux.HandleFunc("/missing.pdf", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testSources(base string) []types.SourceEntry {
	return []types.SourceEntry{
		{Title: "Fire Craft Basics", URL: base + "/a.pdf", Source: "misc"},
		{Title: "Fire Craft Basics Mirror", URL: base + "/b.pdf", Source: "mirror"},
		{Title: "Trapping and Snaring", URL: base + "/c.pdf", Source: "misc"},
		{Title: "Lost Manual", URL: base + "/missing.pdf", Source: "misc"},
	}
}

func TestRunFetch(t *testing.T) {
	server := newPDFServer(t)
	downloadDir := filepath.Join(t.TempDir(), "_downloads")

	manifest, err := RunFetch(context.Background(), FetchOptions{
		Sources:     testSources(server.URL),
		DownloadDir: downloadDir,
		Client:      testFetchClient(),
		Concurrency: 2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, manifest.RunID)
	assert.Equal(t, 4, manifest.TotalURLs)
	assert.Equal(t, 2, manifest.Successful)
	assert.Equal(t, 1, manifest.Duplicates)
	assert.Equal(t, 1, manifest.Failed)
	require.Len(t, manifest.Failures, 1)
	assert.Equal(t, "Lost Manual", manifest.Failures[0].Title)
	assert.Len(t, manifest.DuplicateMap, 1)
	assert.Greater(t, manifest.TotalSizeMB, 0.0)

	// The duplicate file is deleted from the staging directory.
	entries, err := os.ReadDir(downloadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunFetch_ItemsSortedByTitle(t *testing.T) {
	server := newPDFServer(t)

	manifest, err := RunFetch(context.Background(), FetchOptions{
		Sources:     testSources(server.URL),
		DownloadDir: filepath.Join(t.TempDir(), "_downloads"),
		Client:      testFetchClient(),
	})
	require.NoError(t, err)

	for i := 1; i < len(manifest.Items); i++ {
		assert.LessOrEqual(t, manifest.Items[i-1].Title, manifest.Items[i].Title)
	}
}

func TestRunFetch_ResumesCachedFile(t *testing.T) {
	server := newPDFServer(t)
	downloadDir := filepath.Join(t.TempDir(), "_downloads")
	require.NoError(t, os.MkdirAll(downloadDir, 0755))

	// Pre-stage the file the way an interrupted run would leave it.
	cached := pdfPayload("cached")
	require.NoError(t, os.WriteFile(filepath.Join(downloadDir, "Fire-Craft-Basics.pdf"), cached, 0644))

	manifest, err := RunFetch(context.Background(), FetchOptions{
		Sources:     testSources(server.URL)[:1],
		DownloadDir: downloadDir,
		Client:      testFetchClient(),
	})
	require.NoError(t, err)
	require.Len(t, manifest.Items, 1)
	assert.Equal(t, int64(len(cached)), manifest.Items[0].SizeBytes)
}

func TestRunRetry_RecoversFailure(t *testing.T) {
	server := newPDFServer(t)
	downloadDir := filepath.Join(t.TempDir(), "_downloads")
	require.NoError(t, os.MkdirAll(downloadDir, 0755))

	manifest := &types.Manifest{
		TotalURLs: 1,
		Failed:    1,
		Failures: []types.Failure{
			{Title: "Trapping and Snaring", URL: server.URL + "/c.pdf", Source: "misc", Error: "HTTP 503"},
		},
	}

	err := RunRetry(context.Background(), manifest, FetchOptions{
		DownloadDir: downloadDir,
		Client:      testFetchClient(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, manifest.Successful)
	assert.Zero(t, manifest.Failed)
	assert.Empty(t, manifest.Failures)
	require.Len(t, manifest.Items, 1)
	assert.Len(t, manifest.Items[0].SHA256, 64)
}

func TestRunRetry_DuplicateOfExistingItem(t *testing.T) {
	server := newPDFServer(t)
	downloadDir := filepath.Join(t.TempDir(), "_downloads")
	require.NoError(t, os.MkdirAll(downloadDir, 0755))

	// First fetch the shared content normally, then retry a failure that
	// resolves to the same bytes.
	first, err := RunFetch(context.Background(), FetchOptions{
		Sources:     testSources(server.URL)[:1],
		DownloadDir: downloadDir,
		Client:      testFetchClient(),
	})
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	first.Failures = []types.Failure{
		{Title: "Fire Craft Duplicate", URL: server.URL + "/b.pdf", Source: "mirror", Error: "HTTP 503"},
	}
	first.Failed = 1

	err = RunRetry(context.Background(), first, FetchOptions{
		DownloadDir: downloadDir,
		Client:      testFetchClient(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Successful)
	assert.Equal(t, 1, first.Duplicates)
	assert.Zero(t, first.Failed)
	assert.Contains(t, first.DuplicateMap, "Fire-Craft-Duplicate.pdf")
}

func TestRunAll_EndToEnd(t *testing.T) {
	server := newPDFServer(t)
	tmpDir := t.TempDir()
	baseDir := filepath.Join(tmpDir, "pdfs")
	catalogPath := filepath.Join(tmpDir, "catalog", "catalog.json")

	summary, err := RunAll(context.Background(), RunOptions{
		Sources:      testSources(server.URL),
		BaseDir:      baseDir,
		DownloadDir:  filepath.Join(baseDir, "_downloads"),
		CatalogPath:  catalogPath,
		ManifestPath: filepath.Join(tmpDir, "catalog", "download_manifest.json"),
		IndexPath:    filepath.Join(tmpDir, "catalog", "index.db"),
		Client:       testFetchClient(),
		Concurrency:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Report.Accepted)
	assert.Equal(t, 2, summary.Catalog.Stats.TotalPDFs)
	assert.FileExists(t, catalogPath)
	assert.FileExists(t, filepath.Join(tmpDir, "catalog", "download_manifest.json"))
	assert.FileExists(t, filepath.Join(tmpDir, "catalog", "index.db"))

	// Accepted files moved out of the staging directory into their
	// category directories.
	for _, item := range summary.Catalog.Items {
		assert.FileExists(t, filepath.FromSlash(item.Path))
	}
	assert.Empty(t, summary.Reconcile.Removed)
}
