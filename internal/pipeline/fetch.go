package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/dedup"
	"github.com/nomadlib/curator/internal/fetch"
	"github.com/nomadlib/curator/internal/fingerprint"
	"github.com/nomadlib/curator/internal/slug"
	"github.com/nomadlib/curator/internal/types"
)

// DefaultConcurrency bounds parallel downloads when the caller does not
// set a limit. Source hosts are small archive sites; hammering them gets
// the client blocked.
const DefaultConcurrency = 4

// FetchOptions configures a retrieval pass.
type FetchOptions struct {
	Sources     []types.SourceEntry
	DownloadDir string
	Client      *fetch.Client
	// Registry carries hashes from earlier passes so a retry never
	// reintroduces content that is already in the library.
	Registry    *dedup.Registry
	Concurrency int
	OnProgress  ProgressCallback
}

// RunFetch downloads every source entry, deduplicates by content hash,
// and returns the manifest for the pass. Individual download failures are
// recorded in the manifest, not returned as errors; only cancellation
// stops the pass.
func RunFetch(ctx context.Context, opts FetchOptions) (*types.Manifest, error) {
	client := opts.Client
	if client == nil {
		client = fetch.NewClient(nil)
	}
	registry := opts.Registry
	if registry == nil {
		registry = dedup.NewRegistry()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if err := os.MkdirAll(opts.DownloadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory %s: %w", opts.DownloadDir, err)
	}

	manifest := &types.Manifest{
		RunID:        uuid.NewString(),
		DownloadDate: time.Now().UTC().Format(time.RFC3339),
		TotalURLs:    len(opts.Sources),
		DuplicateMap: make(map[string]string),
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	total := len(opts.Sources)
	for i, entry := range opts.Sources {
		g.Go(func() error {
			artifact, failure := fetchOne(gCtx, client, entry, opts.DownloadDir)

			mu.Lock()
			defer mu.Unlock()

			if failure != nil {
				manifest.Failed++
				manifest.Failures = append(manifest.Failures, *failure)
				emitProgress(opts.OnProgress, "fetch",
					fmt.Sprintf("[%d/%d] FAIL: %s - %s", i+1, total, entry.Title, failure.Error))
				return nil
			}

			if orig, dup := registry.Check(*artifact); dup {
				manifest.Duplicates++
				manifest.DuplicateMap[artifact.Filename] = orig.Filename
				_ = os.Remove(filepath.Join(opts.DownloadDir, artifact.Filename))
				emitProgress(opts.OnProgress, "fetch",
					fmt.Sprintf("[%d/%d] DUP: %s (same content as %s)", i+1, total, entry.Title, orig.Title))
				return nil
			}

			manifest.Successful++
			manifest.Items = append(manifest.Items, *artifact)
			emitProgress(opts.OnProgress, "fetch",
				fmt.Sprintf("[%d/%d] OK: %s (%d bytes)", i+1, total, entry.Title, artifact.SizeBytes))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	finalizeManifest(manifest)
	return manifest, nil
}

// RunRetry re-attempts every failure in the manifest with the recovery
// strategies (Drive confirmation flow, Referer headers, Wayback Machine)
// and folds newly recovered items back into the manifest.
func RunRetry(ctx context.Context, manifest *types.Manifest, opts FetchOptions) error {
	client := opts.Client
	if client == nil {
		client = fetch.NewClient(nil)
	}
	registry := opts.Registry
	if registry == nil {
		registry = dedup.NewRegistry()
	}
	registry.Seed(manifest.Items)

	var remaining []types.Failure
	total := len(manifest.Failures)

	for i, failure := range manifest.Failures {
		if err := ctx.Err(); err != nil {
			return err
		}

		filename := slug.SanitizeFilename(failure.Title) + ".pdf"
		dest := filepath.Join(opts.DownloadDir, filename)

		result, err := client.Retry(ctx, failure.URL, dest)
		if err != nil {
			failure.Error = err.Error()
			remaining = append(remaining, failure)
			emitProgress(opts.OnProgress, "retry",
				fmt.Sprintf("[%d/%d] STILL FAILED: %s", i+1, total, failure.Title))
			continue
		}

		sha, err := fingerprint.File(dest)
		if err != nil {
			failure.Error = fmt.Sprintf("hashing failed: %v", err)
			remaining = append(remaining, failure)
			continue
		}

		artifact := types.RetrievedArtifact{
			Title:       failure.Title,
			Filename:    filename,
			Source:      failure.Source,
			OriginalURL: failure.URL,
			SHA256:      sha,
			SizeBytes:   result.SizeBytes,
		}

		if orig, dup := registry.Check(artifact); dup {
			manifest.Duplicates++
			if manifest.DuplicateMap == nil {
				manifest.DuplicateMap = make(map[string]string)
			}
			manifest.DuplicateMap[filename] = orig.Filename
			_ = os.Remove(dest)
			emitProgress(opts.OnProgress, "retry",
				fmt.Sprintf("[%d/%d] DUP: %s (same content as %s)", i+1, total, failure.Title, orig.Title))
			continue
		}

		manifest.Successful++
		manifest.Items = append(manifest.Items, artifact)
		emitProgress(opts.OnProgress, "retry",
			fmt.Sprintf("[%d/%d] RECOVERED: %s (%d bytes)", i+1, total, failure.Title, result.SizeBytes))
	}

	manifest.Failures = remaining
	manifest.Failed = len(remaining)
	finalizeManifest(manifest)
	return nil
}

// fetchOne retrieves a single source entry into the download directory.
// Existing non-empty files are reused so an interrupted pass can resume.
func fetchOne(ctx context.Context, client *fetch.Client, entry types.SourceEntry, downloadDir string) (*types.RetrievedArtifact, *types.Failure) {
	filename := slug.SanitizeFilename(entry.Title) + ".pdf"
	dest := filepath.Join(downloadDir, filename)

	var sizeBytes int64
	if fi, err := os.Stat(dest); err == nil && fi.Size() > 0 {
		sizeBytes = fi.Size()
	} else {
		var result *fetch.Result
		var err error
		if fetch.IsGoogleDriveURL(entry.URL) {
			result, err = client.DownloadDrive(ctx, entry.URL, dest)
		} else {
			result, err = client.Download(ctx, entry.URL, dest)
		}
		if err != nil {
			return nil, &types.Failure{
				Title:  entry.Title,
				URL:    entry.URL,
				Source: entry.Source,
				Error:  err.Error(),
			}
		}
		sizeBytes = result.SizeBytes
	}

	sha, err := fingerprint.File(dest)
	if err != nil {
		return nil, &types.Failure{
			Title:  entry.Title,
			URL:    entry.URL,
			Source: entry.Source,
			Error:  fmt.Sprintf("hashing failed: %v", err),
		}
	}

	return &types.RetrievedArtifact{
		Title:       entry.Title,
		Filename:    filename,
		Source:      entry.Source,
		OriginalURL: entry.URL,
		SHA256:      sha,
		SizeBytes:   sizeBytes,
	}, nil
}

// finalizeManifest recomputes the derived manifest fields and restores a
// deterministic item order after concurrent appends.
func finalizeManifest(manifest *types.Manifest) {
	sort.Slice(manifest.Items, func(i, j int) bool {
		return manifest.Items[i].Title < manifest.Items[j].Title
	})
	var totalBytes int64
	for _, item := range manifest.Items {
		totalBytes += item.SizeBytes
	}
	manifest.TotalSizeMB = catalog.RoundMB(totalBytes)
}
