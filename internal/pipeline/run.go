// Package pipeline provides the high-level orchestration for building and
// maintaining the library: retrieval, classification, organization,
// reconciliation, and search indexing.
package pipeline

import (
	"context"
	"fmt"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/fetch"
	"github.com/nomadlib/curator/internal/search"
	"github.com/nomadlib/curator/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// emitProgress calls the progress callback if configured.
func emitProgress(cb ProgressCallback, step, message string) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message})
	}
}

// RunOptions holds configuration for a full pipeline run.
type RunOptions struct {
	Sources      []types.SourceEntry
	BaseDir      string
	DownloadDir  string
	CatalogPath  string
	ManifestPath string
	IndexPath    string
	Client       *fetch.Client
	Concurrency  int
	// Retry re-attempts failed downloads with the recovery strategies
	// before classification.
	Retry      bool
	OnProgress ProgressCallback
}

// RunSummary collects the outputs of a full run for reporting.
type RunSummary struct {
	Manifest  *types.Manifest
	Catalog   *types.Catalog
	Report    *ClassifyReport
	Organized *catalog.OrganizeResult
	Reconcile *catalog.ReconcileResult
}

// RunAll executes the whole pipeline: fetch, optional retry, classify,
// organize, reconcile, and index. Every stage persists its output before
// the next starts, so a failed run leaves the previous stage's files
// intact and usable.
func RunAll(ctx context.Context, opts RunOptions) (*RunSummary, error) {
	summary := &RunSummary{}

	fmt.Printf("Step 1/6: Fetching %d sources...\n", len(opts.Sources))
	manifest, err := RunFetch(ctx, FetchOptions{
		Sources:     opts.Sources,
		DownloadDir: opts.DownloadDir,
		Client:      opts.Client,
		Concurrency: opts.Concurrency,
		OnProgress:  opts.OnProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch pass failed: %w", err)
	}
	summary.Manifest = manifest

	if opts.Retry && len(manifest.Failures) > 0 {
		fmt.Printf("Step 2/6: Retrying %d failed downloads...\n", len(manifest.Failures))
		if err := RunRetry(ctx, manifest, FetchOptions{
			DownloadDir: opts.DownloadDir,
			Client:      opts.Client,
			OnProgress:  opts.OnProgress,
		}); err != nil {
			return nil, fmt.Errorf("retry pass failed: %w", err)
		}
	} else {
		fmt.Printf("Step 2/6: No retry needed (%d failures).\n", len(manifest.Failures))
	}

	if err := catalog.SaveManifest(opts.ManifestPath, manifest); err != nil {
		return nil, fmt.Errorf("saving manifest failed: %w", err)
	}

	fmt.Printf("Step 3/6: Classifying %d documents...\n", len(manifest.Items))
	// Fresh registry here: manifest items are already unique, and the
	// fetch registry would flag every one of them as seen.
	cat, report, err := BuildCatalog(manifest, ClassifyOptions{
		DownloadDir: opts.DownloadDir,
		OnProgress:  opts.OnProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	summary.Catalog = cat
	summary.Report = report

	fmt.Printf("Step 4/6: Organizing files into category directories...\n")
	organized, err := catalog.Organize(cat, opts.DownloadDir, opts.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("organizing files failed: %w", err)
	}
	summary.Organized = &organized

	fmt.Printf("Step 5/6: Reconciling catalog against filesystem...\n")
	reconciled := catalog.Reconcile(cat, opts.BaseDir, catalog.OSProbe)
	summary.Reconcile = &reconciled

	if err := catalog.Save(opts.CatalogPath, cat); err != nil {
		return nil, fmt.Errorf("saving catalog failed: %w", err)
	}

	fmt.Printf("Step 6/6: Rebuilding search index...\n")
	ix, err := search.Open(opts.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("opening search index failed: %w", err)
	}
	defer func() { _ = ix.Close() }()
	if err := ix.Rebuild(ctx, cat.Items); err != nil {
		return nil, fmt.Errorf("rebuilding search index failed: %w", err)
	}

	return summary, nil
}
