package classify

import (
	"strings"

	"github.com/nomadlib/curator/internal/types"
)

// Title phrases whose presence always promotes a document to essential.
var essentialTitles = []string{
	"where there is no doctor", "where there is no dentist",
	"fm 21-76", "nuclear war survival skills", "first aid",
	"special forces medical", "survival and austere medicine",
	"field hygiene", "preventive medicine", "citizen preparedness",
	"bug out bag", "emergency plan", "survival kit",
}

// RefineCategory offers a second opinion based on extracted text. It only
// overrides toward nuclear-cbrn or medicine, and only when the title
// corroborates the content signal; any weaker evidence keeps the original
// title-based category. The asymmetry is deliberate: content snippets are
// noisy and a conservative override avoids churning settled classifications.
func RefineCategory(title, text string, current types.Category) types.Category {
	textLower := strings.ToLower(text)
	if len(textLower) > 1000 {
		textLower = textLower[:1000]
	}
	titleLower := strings.ToLower(title)

	if current != types.CategoryNuclearCBRN &&
		containsAny(textLower, "nuclear", "radiological", "fallout", "detonation") &&
		containsAny(titleLower, "nuclear", "nbc", "cbrn") {
		return types.CategoryNuclearCBRN
	}

	if current != types.CategoryMedicine &&
		containsAny(textLower, "first aid", "medical", "wound", "patient", "treatment") &&
		containsAny(titleLower, "medical", "medicine", "first aid", "doctor", "dentist") {
		return types.CategoryMedicine
	}

	return current
}

// RefineScore adjusts the tier using content-derived facts. Small practical
// checklists and kits become essential, very large encyclopedic volumes
// become comprehensive, and core survival titles are always essential.
// The current tier is otherwise kept; refinement never downgrades a document
// below what the title-based pass assigned.
func RefineScore(title string, current types.Tier, sizeBytes int64) types.Tier {
	titleLower := strings.ToLower(title)
	sizeMB := float64(sizeBytes) / (1024 * 1024)

	if sizeMB < 0.5 && containsAny(titleLower, "checklist", "kit") {
		return types.TierEssential
	}

	if sizeMB > 15 && containsAny(titleLower, "encyclopedia", "cyclopedia", "complete guide") {
		return types.TierComprehensive
	}

	for _, et := range essentialTitles {
		if strings.Contains(titleLower, et) {
			return types.TierEssential
		}
	}

	return current
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
