// Package types provides type definitions for structured data used throughout the curator system.
package types

// Category is a topical classification label drawn from a fixed set.
type Category string

// Category labels. DefaultCategory is the catch-all assigned when no keyword
// rule matches.
const (
	CategorySurvival     Category = "survival"
	CategoryMedicine     Category = "medicine"
	CategoryPreparedness Category = "preparedness"
	CategoryMilitary     Category = "military"
	CategoryNuclearCBRN  Category = "nuclear-cbrn"
	CategoryFoodAgri     Category = "food-agriculture"
	CategoryDIYRepair    Category = "diy-repair"
	CategoryNavigation   Category = "navigation"
	CategorySelfDefense  Category = "self-defense"
	CategoryShelter      Category = "shelter-construction"
	CategoryWater        Category = "water-sanitation"
	CategoryReference    Category = "reference"
	CategoryEducation    Category = "education"

	DefaultCategory = CategoryEducation
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategorySurvival,
	CategoryMedicine,
	CategoryPreparedness,
	CategoryMilitary,
	CategoryNuclearCBRN,
	CategoryFoodAgri,
	CategoryDIYRepair,
	CategoryNavigation,
	CategorySelfDefense,
	CategoryShelter,
	CategoryWater,
	CategoryReference,
	CategoryEducation,
}

// Tier is the ordinal importance label assigned to a document.
type Tier string

const (
	TierEssential     Tier = "essential"
	TierStandard      Tier = "standard"
	TierComprehensive Tier = "comprehensive"
)

// TierOrder maps tiers to their sort position (essential first).
var TierOrder = map[Tier]int{
	TierEssential:     0,
	TierStandard:      1,
	TierComprehensive: 2,
}

// AllTiers lists every tier in sort order.
var AllTiers = []Tier{TierEssential, TierStandard, TierComprehensive}

// Relevance flags whether a document matters for serious library use.
type Relevance string

const (
	RelevanceHigh Relevance = "high"
	RelevanceLow  Relevance = "low"
)

// CatalogItem is the durable, classified record for one accepted document.
type CatalogItem struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Filename    string    `json:"filename" validate:"required"`
	Category    Category  `json:"category" validate:"required"`
	Tier        Tier      `json:"tier" validate:"required,oneof=essential standard comprehensive"`
	Relevance   Relevance `json:"relevance"`
	Summary     string    `json:"summary"`
	SizeBytes   int64     `json:"size_bytes" validate:"gte=0"`
	SizeMB      float64   `json:"size_mb"`
	SHA256      string    `json:"sha256" validate:"required"`
	Source      string    `json:"source"`
	OriginalURL string    `json:"original_url"`
	Path        string    `json:"path,omitempty"`
	Pages       int       `json:"pages,omitempty"`
}

// Stats holds aggregate counts derived from catalog items. It is always a
// pure function of the item list and is recomputed on every mutation.
type Stats struct {
	TotalPDFs   int              `json:"total_pdfs"`
	Categories  map[Category]int `json:"categories"`
	Tiers       map[Tier]int     `json:"tiers"`
	TotalSizeMB float64          `json:"total_size_mb"`
}

// Catalog is the full persisted library state.
type Catalog struct {
	Generated string        `json:"generated"`
	Stats     Stats         `json:"stats"`
	Items     []CatalogItem `json:"items"`
}
