package takeoff

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fallbackUnit = "units"

var itemUnits = map[string]string{
	// drywall
	"drywall_sheets":         "sheets",
	"studs":                  "pieces",
	"screws":                 "pieces",
	"joint_compound_gallons": "gallons",
	"tape_rolls":             "rolls",

	// hvac
	"ductwork_linear_ft": "linear ft",
	"duct_tape_rolls":    "rolls",
	"hangers":            "pieces",
	"registers":          "pieces",
	"flex_connectors":    "pieces",

	// painting
	"paint_gallons":       "gallons",
	"primer_gallons":      "gallons",
	"rollers":             "pieces",
	"brushes":             "pieces",
	"drop_cloths":         "pieces",
	"painters_tape_rolls": "rolls",

	// electrical
	"wire_feet":    "feet",
	"outlet_boxes": "boxes",
	"switch_boxes": "boxes",
	"wire_nuts":    "pieces",
	"staples":      "pieces",
	"outlets":      "pieces",
	"switches":     "pieces",

	// plumbing
	"pipe_feet":      "feet",
	"fittings":       "pieces",
	"adhesive_units": "units",
	"fixtures":       "pieces",

	// stucco and exterior paint
	"stucco_bags":             "80lb bags",
	"finish_coat_bags":        "80lb bags",
	"weep_screed_pieces":      "pieces",
	"exterior_paint_gallons":  "gallons",
	"exterior_primer_gallons": "gallons",
}

// UnitFor returns the display unit for an item key, or "units".
func UnitFor(item string) string {
	if u, ok := itemUnits[item]; ok {
		return u
	}
	return fallbackUnit
}

// DisplayName turns an item key into a label: underscores become spaces
// and each word is title-cased.
func DisplayName(item string) string {
	// Casers carry state and are not shared across goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(item, "_", " "))
}

var unitSpellings = map[string]string{
	"each":     "Each",
	"ea":       "Each",
	"ea.":      "Each",
	"pc":       "Each",
	"pcs":      "Each",
	"sheet":    "Sheet",
	"sheets":   "Sheet",
	"sht":      "Sheet",
	"lb":       "lb",
	"lbs":      "lb",
	"pound":    "lb",
	"pounds":   "lb",
	"gallon":   "Gallon",
	"gallons":  "Gallon",
	"gal":      "Gallon",
	"piece":    "Piece",
	"pieces":   "Piece",
	"roll":     "Roll",
	"rolls":    "Roll",
	"box":      "Box",
	"boxes":    "Box",
	"80lb bag": "80lb bag",
	"50lb box": "50lb box",
}

// NormalizeUnit maps common spellings of a supplier unit onto one form.
// Unknown units are returned trimmed and otherwise unchanged.
func NormalizeUnit(unit string) string {
	u := strings.TrimSpace(unit)
	if n, ok := unitSpellings[strings.ToLower(u)]; ok {
		return n
	}
	return u
}
