package classify

import (
	"strings"

	"github.com/nomadlib/curator/internal/types"
)

// Categorize assigns the best-matching category for a document based on its
// title and filename. Every rule in the table is evaluated: the category with
// the most keyword hits wins, ties are broken by lower numeric priority, and
// zero hits anywhere falls back to the catch-all default. A later rule with
// more hits overrides an earlier rule with fewer, so this is deliberately not
// a first-match-wins scan.
func Categorize(title, filename string) types.Category {
	combined := strings.ToLower(title) + " " + strings.ToLower(filename)

	best := types.DefaultCategory
	bestPriority := 999
	bestMatches := 0

	for _, rule := range CategoryRules {
		matches := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(combined, keyword) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		if matches > bestMatches || (matches == bestMatches && rule.Priority < bestPriority) {
			best = rule.ID
			bestPriority = rule.Priority
			bestMatches = matches
		}
	}

	return best
}

// Score assigns a tier: essential keywords first (short-circuit), then
// standard keywords, then the size heuristic. Comprehensive is reachable only
// by size, never by keyword; large unmatched volumes are assumed to be
// reference works.
func Score(title, filename string, sizeBytes int64) types.Tier {
	combined := strings.ToLower(title + " " + filename)

	for _, keyword := range essentialKeywords {
		if strings.Contains(combined, keyword) {
			return types.TierEssential
		}
	}
	for _, keyword := range standardKeywords {
		if strings.Contains(combined, keyword) {
			return types.TierStandard
		}
	}

	if float64(sizeBytes)/(1024*1024) > comprehensiveSizeMB {
		return types.TierComprehensive
	}
	return types.TierStandard
}

// CheckRelevance reports whether a title indicates low relevance to serious
// library use. Low-relevance documents are kept, not excluded.
func CheckRelevance(title string) types.Relevance {
	titleLower := strings.ToLower(title)
	for _, keyword := range lowRelevanceKeywords {
		if strings.Contains(titleLower, keyword) {
			return types.RelevanceLow
		}
	}
	return types.RelevanceHigh
}
