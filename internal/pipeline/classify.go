package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/nomadlib/curator/internal/catalog"
	"github.com/nomadlib/curator/internal/classify"
	"github.com/nomadlib/curator/internal/dedup"
	"github.com/nomadlib/curator/internal/pdftext"
	"github.com/nomadlib/curator/internal/summary"
	"github.com/nomadlib/curator/internal/types"
)

// ClassifyOptions configures the classification pass.
type ClassifyOptions struct {
	// DownloadDir is where the fetched PDFs live. Empty disables PDF
	// inspection; classification then runs on titles and sizes alone.
	DownloadDir string
	// Registry carries hashes seen in earlier passes. Nil starts fresh.
	Registry   *dedup.Registry
	OnProgress ProgressCallback
}

// ClassifyReport summarizes what the classification pass did with each
// manifest item. Exclusions are recorded with the phrase that matched so
// the decision can be audited.
type ClassifyReport struct {
	Accepted     int
	Duplicates   int
	Excluded     []types.Exclusion
	LowRelevance int
}

// BuildCatalog classifies every manifest item and assembles the catalog:
// exclusion screening, hash deduplication, category and tier assignment,
// then summary composition. Items flow through in manifest order; the
// final catalog is sorted by its own contract.
func BuildCatalog(manifest *types.Manifest, opts ClassifyOptions) (*types.Catalog, *ClassifyReport, error) {
	if manifest == nil {
		return nil, nil, fmt.Errorf("manifest is nil")
	}

	registry := opts.Registry
	if registry == nil {
		registry = dedup.NewRegistry()
	}

	report := &ClassifyReport{}
	cat := &types.Catalog{
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	for i, artifact := range manifest.Items {
		if matched, excluded := classify.CheckExclusion(artifact.Title, artifact.Filename); excluded {
			report.Excluded = append(report.Excluded, types.Exclusion{
				Title:   artifact.Title,
				Matched: matched,
			})
			emitProgress(opts.OnProgress, "classify",
				fmt.Sprintf("[%d/%d] EXCLUDED: %s (matched %q)", i+1, len(manifest.Items), artifact.Title, matched))
			continue
		}

		if orig, dup := registry.Check(artifact); dup {
			report.Duplicates++
			emitProgress(opts.OnProgress, "classify",
				fmt.Sprintf("[%d/%d] DUP: %s (same content as %s)", i+1, len(manifest.Items), artifact.Title, orig.Title))
			continue
		}

		category := classify.Categorize(artifact.Title, artifact.Filename)
		tier := classify.Score(artifact.Title, artifact.Filename, artifact.SizeBytes)
		relevance := classify.CheckRelevance(artifact.Title)
		if relevance == types.RelevanceLow {
			report.LowRelevance++
		}

		var info pdftext.Info
		if opts.DownloadDir != "" {
			info = pdftext.Inspect(filepath.Join(opts.DownloadDir, artifact.Filename))
			if info.Snippet != "" {
				category = classify.RefineCategory(artifact.Title, info.Snippet, category)
			}
			tier = classify.RefineScore(artifact.Title, tier, artifact.SizeBytes)
		}

		item := catalog.NewItem(artifact, category, tier, relevance, "")
		item.Pages = info.Pages
		item.Summary = summary.Compose(item, info.Snippet)

		cat.Items = append(cat.Items, item)
		report.Accepted++
		emitProgress(opts.OnProgress, "classify",
			fmt.Sprintf("[%d/%d] %s -> %s/%s", i+1, len(manifest.Items), artifact.Title, category, tier))
	}

	cat.Stats = catalog.ComputeStats(cat.Items)
	catalog.SortItems(cat.Items)
	return cat, report, nil
}
