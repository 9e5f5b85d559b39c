package model

// ParsedDimension is a single measurement token found in page text,
// normalized to feet.
type ParsedDimension struct {
	Value      float64 `json:"value"`      // Length in feet
	Unit       string  `json:"unit"`       // Always "ft"
	RawText    string  `json:"raw_text"`   // Normalized echo of the match (e.g. 24'-6")
	Confidence float64 `json:"confidence"` // Pattern confidence in [0,1]
}

// DivisionCode is an AIA MasterFormat division number ("03", "06", ...)
type DivisionCode string

const (
	DivisionConcrete        DivisionCode = "03"
	DivisionMasonry         DivisionCode = "04"
	DivisionWood            DivisionCode = "06"
	DivisionThermalMoisture DivisionCode = "07"
	DivisionOpenings        DivisionCode = "08"
	DivisionFinishes        DivisionCode = "09"
)

// DetectedMaterial records a division keyword hit in page text.
// Kept for traceability; quantities are derived from geometry, not from these.
type DetectedMaterial struct {
	Keyword       string       `json:"keyword"`
	Division      DivisionCode `json:"division"`
	QuantityFound int          `json:"quantity_found"`
	Context       string       `json:"context"`
}
