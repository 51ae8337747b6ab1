package summary

// manualSummaries holds hand-written descriptions for essential-tier items,
// keyed by exact title. Manual summaries take absolute precedence over
// generated ones.
var manualSummaries = map[string]string{
	"FM 21-76 US Army Survival Manual":                "The definitive U.S. Army survival field manual covering psychology of survival, planning, basic medicine, shelter construction, water procurement, fire-making, food foraging, weapons and tools, desert/tropical/cold weather/sea survival, navigation, and signaling. The gold standard reference for military and civilian wilderness survival.",
	"FM 21-76-1 Survival Evasion and Recovery":        "U.S. military multiservice guide covering survival, evasion, resistance, and escape (SERE) procedures. Includes navigation without instruments, shelter and fire techniques, water and food procurement, evasion planning, and recovery operations. Companion to FM 21-76.",
	"FM 4-25.11 First Aid":                            "U.S. Army field manual for first aid procedures including casualty evaluation, breathing restoration, bleeding control, shock prevention, fracture treatment, burns care, heat/cold injuries, and field-expedient bandaging. Essential medical reference for emergency situations.",
	"Where There is No Doctor":                        "Comprehensive 503-page village health care handbook by David Werner, widely regarded as the most important medical reference for situations without professional healthcare access. Covers diagnostics, common diseases, wounds, childbirth, nutrition, preventive care, and when to seek help. Used worldwide by aid organizations.",
	"Where There is No Dentist":                       "Practical dental care guide for situations without access to professional dentistry. Covers tooth anatomy, common dental problems, pain management, tooth extraction, oral hygiene, and preventive dental care using available materials.",
	"ST 31-91B Special Forces Medical Handbook":       "Comprehensive U.S. Army Special Forces medical reference covering emergency assessment, trauma care, pharmacology, disease diagnosis, veterinary medicine, dental emergencies, OB/GYN, pediatrics, and preventive medicine. One of the most thorough military medical handbooks available.",
	"Survival and Austere Medicine":                   "Community-authored guide to practicing medicine when modern healthcare is unavailable. Covers wound management, fractures, infections, chronic disease management, improvised equipment, dental care, anesthesia, and pharmaceutical alternatives. Highly practical for long-term grid-down scenarios.",
	"NAVMED P-5010 USN Manual of Preventive Medicine": "U.S. Navy guide covering disease prevention, sanitation, pest control, food safety, water quality, occupational health, and field hygiene. Essential for maintaining health in austere or group-living conditions.",
	"FM 21-10 Field Hygiene and Sanitation":           "U.S. Army manual on maintaining health and hygiene in field conditions. Covers water purification, waste disposal, personal hygiene, pest management, food sanitation, and disease prevention. Critical for any scenario involving group survival.",
	"Nuclear War Survival Skills by Cresson Kearny":   "The definitive civilian guide to surviving nuclear war, authored by Oak Ridge National Laboratory researcher Cresson Kearny. Covers blast/fallout protection, improvised shelters, ventilation, water/food storage, radiation measurement, and post-attack recovery across 317 pages. Essential reading for nuclear preparedness.",
	"Nuclear War Survival Skills":                     "Alternate edition of Kearny's nuclear survival guide covering fallout protection, improvised shelter construction, ventilation pumps, water storage, fallout meter construction, and recovery procedures. Core nuclear preparedness reference.",
	"Nuclear Survival Kit Checklist":                  "Quick-reference checklist for assembling a nuclear event survival kit including radiation detection, shelter supplies, decontamination materials, and communication equipment.",
	"FEMA Citizen Preparedness Guide":                 "Official FEMA guide for individual and family emergency preparedness covering risk assessment, emergency kits, communication plans, shelter-in-place procedures, and evacuation planning across multiple disaster types.",
	"Basic Emergency Plan":                            "Concise emergency planning template for families and individuals to document evacuation routes, meeting points, emergency contacts, and critical procedures.",
	"Home Survival Kit Checklist":                     "Practical checklist for assembling a comprehensive home emergency kit covering water, food, first aid, tools, communication, lighting, and sanitation supplies.",
	"Bug Out Bag Checklist":                           "Detailed checklist for building a 72-hour evacuation bag covering shelter, water filtration, fire-making, food, first aid, navigation, communication, and personal documents.",
	"Survival First Aid Kit Checklist":                "Comprehensive checklist for assembling a survival-oriented first aid kit including trauma supplies, medications, wound care, and improvised medical tools.",
	"Down But Not Out - Canadian Survival Manual":     "Canadian Armed Forces survival manual covering Arctic, temperate, and wilderness survival including shelter construction, fire-making, water procurement, food sources, navigation, and rescue signaling. Adapted for Canadian geography and climate extremes.",
	"Montana Winter Survival Manual":                  "State-published winter survival guide focused on cold weather vehicle emergencies, hypothermia prevention, shelter building in snow, fire-making in wet conditions, and winter-specific survival priorities.",
	"3 Day Emergency Prep":                            "Practical 3-day emergency preparedness guide covering essential supplies, water storage, food preparation, first aid basics, communication plans, and shelter-in-place procedures.",
	"Everyday Carry Checklist":                        "Practical checklist for daily-carry preparedness items including tools, first aid, communication, fire-making, and personal protection essentials.",
	"Estonia Be Prepared Crisis Guide":                "Estonian government crisis preparedness guide covering emergency supplies, communication plans, evacuation procedures, and self-sufficiency during infrastructure disruption. Notable for its post-Soviet practical approach to civil defense.",
	"FEMA Family Supply List":                         "Official FEMA recommended supply list for family emergency preparedness including water, food, medical, sanitation, and communication essentials.",
	"Norway One Week Preparedness Guide":              "Norwegian government guide for civilian self-sufficiency during one week of infrastructure disruption covering water, food, warmth, communication, and medical supplies.",
	"Sweden In Case of Crisis or War":                 "Swedish government civil defense booklet distributed to all households covering wartime preparedness, shelter procedures, supply stockpiling, and crisis communication. Notable for direct government guidance on military threat preparedness.",
}

// HasOverride reports whether a curated summary exists for the exact title.
func HasOverride(title string) bool {
	_, ok := manualSummaries[title]
	return ok
}
