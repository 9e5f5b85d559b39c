package model

import "time"

// MaterialLineItem is one supplier-ready order line.
// OrderLine is a display grouping convention (framing from 1, connectors
// from 100, fasteners from 200, anchors from 300, finishes from 400), not an identity.
type MaterialLineItem struct {
	OrderLine     int          `json:"order_line"`
	Description   string       `json:"description"`
	LumberSize    string       `json:"lumber_size"`
	Quantity      int          `json:"quantity"`
	Length        string       `json:"length"`
	Unit          string       `json:"unit"`
	Division      DivisionCode `json:"division"`
	Subcategory   string       `json:"subcategory"`
	SupplierNotes string       `json:"supplier_notes"`
}

// Takeoff is a complete material list for one project
type Takeoff struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Project   ProjectInfo        `json:"project_info"`
	Materials []MaterialLineItem `json:"materials"`
	Summary   TakeoffSummary     `json:"summary"`
}

// ProjectInfo echoes the geometry the takeoff was derived from
type ProjectInfo struct {
	Filename     string         `json:"filename,omitempty"`
	PageCount    int            `json:"page_count"`
	TotalSqft    int            `json:"total_sqft"`
	WallLinearFt int            `json:"wall_linear_ft"`
	Stories      int            `json:"stories"`
	Foundation   FoundationType `json:"foundation"`
	Doors        int            `json:"doors"`
	Windows      int            `json:"windows"`
}

// TakeoffSummary describes what a takeoff covers
type TakeoffSummary struct {
	TotalLineItems    int      `json:"total_line_items"`
	DivisionsIncluded []string `json:"divisions_included"`
	Note              string   `json:"note"`
}
