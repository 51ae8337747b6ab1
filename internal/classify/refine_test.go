package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomadlib/curator/internal/types"
)

func TestRefineCategory_UpgradesToNuclearWhenTitleCorroborates(t *testing.T) {
	text := "Effects of nuclear detonation and fallout patterns over urban areas"
	got := RefineCategory("NBC Defense Handbook", text, types.CategoryMilitary)
	assert.Equal(t, types.CategoryNuclearCBRN, got)
}

func TestRefineCategory_ContentAloneDoesNotOverride(t *testing.T) {
	// Snippet mentions fallout but the title carries no nuclear signal:
	// the conservative override declines.
	text := "Chapter 3 covers fallout shelters in detail"
	got := RefineCategory("General Preparedness Notes", text, types.CategoryPreparedness)
	assert.Equal(t, types.CategoryPreparedness, got)
}

func TestRefineCategory_UpgradesToMedicine(t *testing.T) {
	text := "wound care and patient treatment procedures for field conditions"
	got := RefineCategory("Combat Medical Reference", text, types.CategoryMilitary)
	assert.Equal(t, types.CategoryMedicine, got)
}

func TestRefineCategory_AlreadyCorrectIsStable(t *testing.T) {
	text := "nuclear detonation effects"
	got := RefineCategory("Nuclear Survival", text, types.CategoryNuclearCBRN)
	assert.Equal(t, types.CategoryNuclearCBRN, got)
}

func TestRefineScore_SmallChecklistBecomesEssential(t *testing.T) {
	got := RefineScore("Hurricane Survival Kit Checklist", types.TierStandard, 200_000)
	assert.Equal(t, types.TierEssential, got)
}

func TestRefineScore_LargeEncyclopediaBecomesComprehensive(t *testing.T) {
	got := RefineScore("Household Cyclopedia of General Information", types.TierStandard, 18*1024*1024)
	assert.Equal(t, types.TierComprehensive, got)
}

func TestRefineScore_CoreTitlesAlwaysEssential(t *testing.T) {
	got := RefineScore("Where There is No Doctor", types.TierStandard, 8*1024*1024)
	assert.Equal(t, types.TierEssential, got)
}

func TestRefineScore_NoSignalKeepsCurrent(t *testing.T) {
	got := RefineScore("Astrophysics Lecture Notes", types.TierComprehensive, 25*1024*1024)
	assert.Equal(t, types.TierComprehensive, got)
}
