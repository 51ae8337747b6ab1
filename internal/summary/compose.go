// Package summary composes human-readable descriptions for catalog items
// from their classification and, when available, extracted text snippets.
package summary

import (
	"fmt"
	"strings"

	"github.com/nomadlib/curator/internal/types"
)

// minSnippetLen is the threshold below which an extracted snippet is treated
// as uninformative and the generic template is used instead.
const minSnippetLen = 50

// maxTopics caps how many detected topics a summary lists.
const maxTopics = 6

// orgSignature maps an early-text phrase to a publishing-organization label.
type orgSignature struct {
	phrase string
	label  string
}

// Checked against the first segment of the snippet, first match wins.
var orgSignatures = []orgSignature{
	{"department of the army", "U.S. Army"},
	{"marine corps", "U.S. Marine Corps"},
	{"usmc", "U.S. Marine Corps"},
	{"department of defense", "U.S. Department of Defense"},
	{"fema", "FEMA"},
	{"canadian", "Canadian Forces"},
	{"canada", "Canadian Forces"},
	{"boy scout", "Boy Scouts of America"},
}

// topicVocabulary is scanned in order; summaries list hits in this order,
// not by frequency.
var topicVocabulary = []string{
	"water", "fire", "shelter", "food", "navigation", "first aid",
	"signaling", "survival", "medical", "weapons", "trapping",
	"hunting", "fishing", "plants", "knots", "radio", "nuclear",
	"decontamination", "evacuation", "emergency", "wounds",
	"fractures", "burns", "cpr", "bleeding", "shock",
	"canning", "preserving", "garden", "seeds", "soil",
	"cold weather", "desert", "tropical", "sea survival",
	"urban", "evasion", "concealment", "camouflage",
}

var categoryDescriptions = map[types.Category]string{
	types.CategorySurvival:     "wilderness and general survival",
	types.CategoryMedicine:     "medical and health care",
	types.CategoryPreparedness: "emergency preparedness and planning",
	types.CategoryMilitary:     "military operations and tactics",
	types.CategoryNuclearCBRN:  "nuclear, chemical, biological, and radiological defense",
	types.CategoryFoodAgri:     "food procurement, preservation, and agriculture",
	types.CategoryDIYRepair:    "practical DIY skills and home management",
	types.CategoryNavigation:   "navigation and communication",
	types.CategorySelfDefense:  "self-defense and personal security",
	types.CategoryShelter:      "shelter design and construction",
	types.CategoryWater:        "water treatment and sanitation",
	types.CategoryReference:    "quick reference",
	types.CategoryEducation:    "general survival education",
}

// CategoryDescription returns the display phrase for a category.
func CategoryDescription(c types.Category) string {
	if desc, ok := categoryDescriptions[c]; ok {
		return desc
	}
	return "general reference"
}

// Compose builds a one-sentence description for an item. A curated override
// for the exact title is returned verbatim and is never auto-overwritten.
// Without a usable snippet the generic template identifies title, page count,
// size, and category. Otherwise the summary combines a detected publishing
// organization, page and size facts, the category description, and the topics
// found in the snippet. Compose never fails; absent signal degrades to the
// generic template.
func Compose(item types.CatalogItem, extracted string) string {
	if manual, ok := manualSummaries[item.Title]; ok {
		return manual
	}

	sizeMB := item.SizeMB
	if sizeMB == 0 && item.SizeBytes > 0 {
		sizeMB = float64(item.SizeBytes) / (1024 * 1024)
	}

	extracted = strings.TrimSpace(extracted)
	if len(extracted) < minSnippetLen {
		return fmt.Sprintf("%s. A %d-page reference document (%.2f MB) in the %s category for offline library use.",
			item.Title, item.Pages, sizeMB, strings.ReplaceAll(string(item.Category), "-", " "))
	}

	org := detectOrganization(extracted)
	orgStr := ""
	if org != "" {
		orgStr = org + " "
	}

	sentence := fmt.Sprintf("%s. %s%d-page reference covering %s topics.",
		item.Title, orgStr, item.Pages, CategoryDescription(item.Category))

	if topics := scanTopics(extracted); len(topics) > 0 {
		sentence += fmt.Sprintf(" Covers %s.", strings.Join(topics, ", "))
	}

	return fmt.Sprintf("%s %.2f MB.", sentence, sizeMB)
}

// detectOrganization looks for a publishing-organization signature in the
// first segment of the snippet.
func detectOrganization(text string) string {
	segment := strings.ToLower(text)
	if len(segment) > 800 {
		segment = segment[:800]
	}
	for _, sig := range orgSignatures {
		if strings.Contains(segment, sig.phrase) {
			return sig.label
		}
	}
	return ""
}

// scanTopics returns up to maxTopics vocabulary entries present in the
// snippet, in vocabulary order.
func scanTopics(text string) []string {
	textLower := strings.ToLower(text)
	var topics []string
	for _, topic := range topicVocabulary {
		if strings.Contains(textLower, topic) {
			topics = append(topics, topic)
			if len(topics) == maxTopics {
				break
			}
		}
	}
	return topics
}
