// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/nomadlib/curator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintManifest outputs a human-readable summary of a download run.
func (p *Printer) PrintManifest(m *types.Manifest) {
	if m == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sources:    %d\n", m.TotalURLs))
	sb.WriteString(fmt.Sprintf("Retrieved:  %d (%.2f MB)\n", m.Successful, m.TotalSizeMB))
	sb.WriteString(fmt.Sprintf("Duplicates: %d\n", m.Duplicates))
	sb.WriteString(fmt.Sprintf("Failed:     %d\n", m.Failed))

	if len(m.Failures) > 0 {
		sb.WriteString("\nFailures:\n")
		count := min(len(m.Failures), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := m.Failures[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", f.Title))
			reason := f.Error
			if len(reason) > 45 {
				reason = reason[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if len(m.Failures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Failures)-maxItemsToShow))
		}
	}

	p.printBox("DOWNLOAD MANIFEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs the catalog's per-category and per-tier breakdown.
func (p *Printer) PrintStats(stats types.Stats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Documents: %d (%.2f MB)\n", stats.TotalPDFs, stats.TotalSizeMB))

	if len(stats.Categories) > 0 {
		sb.WriteString("\nBy category:\n")
		for _, cat := range types.AllCategories {
			if n := stats.Categories[cat]; n > 0 {
				sb.WriteString(fmt.Sprintf("  %-15s %d\n", cat, n))
			}
		}
	}

	if len(stats.Tiers) > 0 {
		sb.WriteString("\nBy tier:\n")
		for _, tier := range types.AllTiers {
			if n := stats.Tiers[tier]; n > 0 {
				sb.WriteString(fmt.Sprintf("  %-15s %d\n", tier, n))
			}
		}
	}

	p.printBox("CATALOG STATS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExclusions outputs the items rejected by the denylist.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExclusions(excluded []types.Exclusion) {
	if len(excluded) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO EXCLUDED ITEMS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Excluded %d items:\n\n", len(excluded)))

	for i, ex := range excluded {
		title := ex.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", title))
		sb.WriteString(fmt.Sprintf("  matched %q\n", ex.Matched))
		if i < len(excluded)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXCLUDED ITEMS", sb.String())
}

// PrintItems outputs the top cataloged items with tier and size.
func (p *Printer) PrintItems(items []types.CatalogItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cataloged %d documents:\n\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		title := item.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    %s / %s, %.2f MB", item.Category, item.Tier, item.SizeMB))
		if item.Pages > 0 {
			sb.WriteString(fmt.Sprintf(", %d pages", item.Pages))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more documents", len(items)-maxItemsToShow))
	}

	p.printBox("CATALOG ITEMS", sb.String())
}
