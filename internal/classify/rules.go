// Package classify assigns category, tier, and relevance labels to library
// documents using weighted keyword rules over titles and filenames.
package classify

import "github.com/nomadlib/curator/internal/types"

// CategoryRule binds a category label to its keyword triggers and numeric
// priority. Lower priority wins ties; match count wins outright.
type CategoryRule struct {
	ID       types.Category
	Keywords []string
	Priority int
}

// CategoryRules is the full rule table, evaluated in order. Evaluation order
// only matters for equal match count and equal priority; selection itself
// considers every rule.
var CategoryRules = []CategoryRule{
	{
		ID: types.CategorySurvival,
		Keywords: []string{
			"survival manual", "survival guide", "survival skills", "wilderness survival",
			"bushcraft", "woodcraft", "camping", "boy scout", "fieldcraft",
			"backcountry", "outback", "woods", "evasion", "recovery",
			"cold weather", "winter survival", "paleo-pocalypse", "worst case scenario",
			"survive doomsday", "surviving in the city", "surviving terrorism",
			"urban survival", "combat survival", "mountaineering", "antarctic",
			"austere", "alpine", "debris hut", "flintknapping",
		},
		Priority: 2,
	},
	{
		ID: types.CategoryMedicine,
		Keywords: []string{
			"medical", "medicine", "first aid", "dentist", "doctor", "health care",
			"preventive medicine", "wound closure", "war surgery", "hygiene",
			"sanitation", "wilderness medicine", "medicinal plants", "herbal",
			"nature cure", "anticancer", "healing pets", "pandemic",
			"influenza", "medical kit", "hospital",
		},
		Priority: 1,
	},
	{
		ID: types.CategoryPreparedness,
		Keywords: []string{
			"preparedness", "emergency plan", "checklist", "bug out", "get home bag",
			"inch bag", "wush bag", "scare kit", "survival kit", "disaster supply",
			"crisis guide", "citizen preparedness", "lds prep", "self-sufficient",
			"3 day emergency", "everyday carry", "car emergency", "bug out vehicle",
			"family supply", "home survival", "crisis", "be prepared",
			"basic emergency", "compact survival kit",
		},
		Priority: 3,
	},
	{
		ID: types.CategoryMilitary,
		Keywords: []string{
			"fm 21-76", "fm 31-70", "fm 3-06", "fm 3-25", "fm 5-103",
			"fm 20-3", "fm 4-25", "stp 21-", "ranger handbook",
			"army warrior", "military", "combatives", "martial arts",
			"kill or get killed", "guerrilla", "art of war",
			"camouflage", "concealment", "survivability", "urban operations",
			"tm 31-210", "improvised munitions", "close quarters combat",
			"hand to hand", "fieldcraft", "usmc", "marines",
		},
		Priority: 4,
	},
	{
		ID: types.CategoryNuclearCBRN,
		Keywords: []string{
			"nuclear", "nbc", "cbrn", "radiation", "fallout", "shelter design",
			"emp", "decontamination", "contamination", "nuclear war",
			"nuclear winter", "nuclear survival", "detonation",
		},
		Priority: 1,
	},
	{
		ID: types.CategoryFoodAgri,
		Keywords: []string{
			"canning", "preserving", "food", "recipe", "garden", "farming",
			"agriculture", "mushroom", "edible", "jerky", "dutch oven",
			"cooking", "dehydrat", "drying", "fermented", "pickle",
			"game meat", "fish", "trapping", "snare", "deadfall",
			"hunting", "foraging", "berry", "baby food", "cookbook",
			"food supply", "food storage", "soil", "composting",
			"greenhouse", "vegetable", "tanning",
		},
		Priority: 5,
	},
	{
		ID: types.CategoryDIYRepair,
		Keywords: []string{
			"carpentry", "concrete", "masonry", "metal forming", "woodworking",
			"macgyver", "how-to", "household cyclopedia", "home repair",
			"generator", "wood burning", "leather work", "foxfire",
			"black powder", "energy device",
		},
		Priority: 6,
	},
	{
		ID: types.CategoryNavigation,
		Keywords: []string{
			"map reading", "land navigation", "compass", "direction finding",
			"signaling", "radio monitoring", "phonetic alphabet", "find your way",
		},
		Priority: 3,
	},
	{
		ID: types.CategorySelfDefense,
		Keywords: []string{
			"combatives", "martial arts", "hand to hand", "self defense",
			"krav maga", "aikido", "jiujitsu", "jiu-jitsu", "unarmed combat",
			"pressure points", "kill or get killed", "close quarters",
			"physical security", "physical fitness", "navy seal fitness",
			"secret hiding", "steal this book",
		},
		Priority: 7,
	},
	{
		ID: types.CategoryShelter,
		Keywords: []string{
			"shelter", "shack", "shanties", "debris hut", "shelter building",
			"shelter construction", "fallout shelter", "family shelter",
		},
		Priority: 5,
	},
	{
		ID: types.CategoryWater,
		Keywords: []string{
			"water purification", "water treatment", "sodis", "safe water",
			"hygiene", "sanitation", "field hygiene",
		},
		Priority: 3,
	},
	{
		ID: types.CategoryReference,
		Keywords: []string{
			"checklist", "phonetic alphabet", "edibility test", "load chart",
			"knots", "rope", "lashing", "splices",
		},
		Priority: 8,
	},
	{
		ID: types.CategoryEducation,
		Keywords: []string{
			"handbook", "encyclopedia", "manual", "guide", "training",
		},
		Priority: 10,
	},
}

// essentialKeywords mark life-saving documents; any hit scores essential.
var essentialKeywords = []string{
	"where there is no doctor", "where there is no dentist", "first aid",
	"fm 21-76", "survival manual", "water purification", "water treatment",
	"nuclear war survival skills", "emergency plan", "citizen preparedness",
	"medical handbook", "survival and austere medicine", "wilderness medicine",
	"emergency war surgery", "wound closure", "field hygiene",
	"nuclear survival", "bug out bag", "survival kit",
	"fm 4-25", "preventive medicine",
}

// standardKeywords mark important practical references.
var standardKeywords = []string{
	"cold weather", "canning", "preserving", "shelter", "map reading",
	"navigation", "compass", "preparedness manual", "lds prep",
	"ranger handbook", "edible", "trapping", "snare", "bushcraft",
	"crisis guide", "food", "garden", "camping", "self-sufficient",
	"decontamination", "contamination", "protection", "fallout",
	"checklist", "knots", "deadfalls", "signals", "direction finding",
}

// lowRelevanceKeywords flag titles of marginal value for serious scenarios.
// These documents stay in the catalog, merely down-weighted for display.
var lowRelevanceKeywords = []string{
	"burning man", "dog bug out", "gift mix", "baby food",
	"healing pets", "anticancer", "stealing", "steal this book",
	"navy seal fitness", "boy scout cookbook", "dutch oven",
	"camping recipes", "native berry",
}

// comprehensiveSizeMB: documents larger than this with no keyword hit are
// assumed to be large reference volumes.
const comprehensiveSizeMB = 20.0
