package model

import "strings"

// FoundationType classifies the building foundation
type FoundationType string

const (
	FoundationSlab        FoundationType = "slab"
	FoundationCrawlspace  FoundationType = "crawlspace"
	FoundationBasement    FoundationType = "basement"
	FoundationPierAndBeam FoundationType = "pier_and_beam"
)

// ParseFoundationType maps free text onto a FoundationType, defaulting to slab.
func ParseFoundationType(s string) FoundationType {
	s = strings.ToLower(strings.TrimSpace(s))
	switch FoundationType(s) {
	case FoundationCrawlspace, FoundationBasement, FoundationPierAndBeam:
		return FoundationType(s)
	case "pier", "pier-and-beam", "pier and beam":
		return FoundationPierAndBeam
	case "crawl", "crawl space":
		return FoundationCrawlspace
	default:
		return FoundationSlab
	}
}

// HasRaisedFloor reports whether floor framing is needed for this foundation
// at the given story count.
func (f FoundationType) HasRaisedFloor(stories int) bool {
	return stories > 1 || f == FoundationCrawlspace
}

// BlueprintEstimate is the aggregated building geometry derived from a
// document or entered by hand. All area and length fields are whole numbers.
type BlueprintEstimate struct {
	Filename       string         `json:"filename,omitempty"`
	PageCount      int            `json:"page_count"`
	TotalSqft      int            `json:"total_sqft"`     // Clamped to [1000, 10000] when estimated
	WallLinearFt   int            `json:"wall_linear_ft"` // Perimeter x stories
	CeilingSqft    int            `json:"ceiling_sqft"`
	FloorSqft      int            `json:"floor_sqft"`
	ExteriorSqft   int            `json:"exterior_sqft"`
	RoofSqft       int            `json:"roof_sqft"` // Includes 15% pitch allowance
	Perimeter      int            `json:"perimeter"`
	NumDoors       int            `json:"num_doors"`
	NumWindows     int            `json:"num_windows"`
	NumStories     int            `json:"num_stories"`
	FoundationType FoundationType `json:"foundation_type"`

	RawText           string             `json:"raw_text,omitempty"`
	DimensionsFound   []ParsedDimension  `json:"dimensions_found,omitempty"`
	MaterialsDetected []DetectedMaterial `json:"materials_detected,omitempty"`
	Signals           []Signal           `json:"signals,omitempty"`
}

// Signal explains which estimation heuristic fired and with what inputs
type Signal struct {
	Type        SignalType             `json:"type"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies estimation signals
type SignalType string

const (
	SignalFootprint   SignalType = "footprint"    // Two largest plausible dimensions used
	SignalPageCount   SignalType = "page_count"   // Fallback: pages x 250 sqft
	SignalClamped     SignalType = "clamped"      // Area forced into residential range
	SignalStories     SignalType = "stories"      // Story phrase detected
	SignalFoundation  SignalType = "foundation"   // Foundation keyword detected
	SignalMinOpenings SignalType = "min_openings" // Door/window floor applied
)
