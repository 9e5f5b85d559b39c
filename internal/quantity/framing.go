package quantity

import (
	"math"

	"github.com/ppiankov/planreader/internal/model"
)

// Order line offsets per group.
const (
	FramingLineStart   = 1
	ConnectorLineStart = 100
	FastenerLineStart  = 200
	AnchorLineStart    = 300
	FinishLineStart    = 400
)

const (
	subcatWoodFraming      = "06 11 00"
	subcatStructuralPanels = "06 12 00"
	subcatWoodConnectors   = "06 05 23"
	notApplicable          = "N/A"
)

// lines assigns consecutive order lines starting at start.
type lines struct {
	next  int
	items []model.MaterialLineItem
}

func newLines(start int) *lines {
	return &lines{next: start}
}

func (l *lines) add(item model.MaterialLineItem) {
	item.OrderLine = l.next
	if item.Division == "" {
		item.Division = model.DivisionWood
	}
	l.items = append(l.items, item)
	l.next++
}

// Generate produces the Division 06 supplier list for an estimate:
// framing, connectors, fasteners and anchors, in that order.
func Generate(est model.BlueprintEstimate) []model.MaterialLineItem {
	est = sanitize(est)
	var out []model.MaterialLineItem
	out = append(out, Framing(est)...)
	out = append(out, Connectors(est)...)
	out = append(out, Fasteners(est)...)
	out = append(out, Anchors(est)...)
	return out
}

// Framing is the lumber and sheathing list. Floor joists and rim joists
// appear only when there is a raised floor; the subfloor also appears over
// a basement.
func Framing(est model.BlueprintEstimate) []model.MaterialLineItem {
	est = sanitize(est)
	wall := float64(est.WallLinearFt)
	floor := float64(est.FloorSqft)
	roof := float64(est.RoofSqft)
	l := newLines(FramingLineStart)

	l.add(model.MaterialLineItem{
		Description:   "2x4x96 (8') Studs",
		LumberSize:    "2x4",
		Quantity:      ceil(wall * 0.75 * 1.1),
		Length:        "8'",
		Unit:          "Each",
		Subcategory:   subcatWoodFraming,
		SupplierNotes: "SPF #2 or better. For wall framing @ 16\" OC",
	})

	// two top plates and one bottom plate per wall run
	plateLF := float64(est.WallLinearFt * 3)
	l.add(model.MaterialLineItem{
		Description:   "2x4x10 Top/Bottom Plates",
		LumberSize:    "2x4",
		Quantity:      ceil(plateLF / 10 * 1.1),
		Length:        "10'",
		Unit:          "Each",
		Subcategory:   subcatWoodFraming,
		SupplierNotes: "Bottom plates at exterior walls must be pressure treated",
	})

	openings := est.NumDoors + est.NumWindows
	l.add(model.MaterialLineItem{
		Description:   "2x6x8 Window/Door Headers",
		LumberSize:    "2x6",
		Quantity:      openings * 2,
		Length:        "8'",
		Unit:          "Each",
		Subcategory:   subcatWoodFraming,
		SupplierNotes: "Header framing for doors and windows",
	})
	l.add(model.MaterialLineItem{
		Description:   "2x8x10 Beams/Large Headers",
		LumberSize:    "2x8",
		Quantity:      ceil(float64(openings) * 0.5),
		Length:        "10'",
		Unit:          "Each",
		Subcategory:   subcatWoodFraming,
		SupplierNotes: "Large window/door headers, garage headers",
	})

	if est.FoundationType.HasRaisedFloor(est.NumStories) {
		l.add(model.MaterialLineItem{
			Description:   "2x10x12 Floor Joists",
			LumberSize:    "2x10",
			Quantity:      ceil(floor / 16 * 0.75 * 1.1),
			Length:        "12'",
			Unit:          "Each",
			Subcategory:   subcatWoodFraming,
			SupplierNotes: "Floor framing @ 16\" OC. Verify span tables.",
		})

		rimLF := ceil(math.Sqrt(floor) * 4)
		l.add(model.MaterialLineItem{
			Description:   "2x10x16 Rim Joists",
			LumberSize:    "2x10",
			Quantity:      ceil(float64(rimLF) / 16 * 1.1),
			Length:        "16'",
			Unit:          "Each",
			Subcategory:   subcatWoodFraming,
			SupplierNotes: "Band/rim joist at floor perimeter",
		})
	}

	l.add(model.MaterialLineItem{
		Description:   "2x6x16 Rafters/Ceiling Joists",
		LumberSize:    "2x6",
		Quantity:      ceil(roof / 24),
		Length:        "16'",
		Unit:          "Each",
		Subcategory:   subcatWoodFraming,
		SupplierNotes: "Roof/ceiling framing. Verify if trusses specified instead.",
	})

	ridge := ceil(math.Sqrt(floor))
	l.add(model.MaterialLineItem{
		Description:   "2x12x16 Ridge Beam",
		LumberSize:    "2x12",
		Quantity:      ceil(float64(ridge) / 16),
		Length:        "16'",
		Unit:          "Each",
		Subcategory:   subcatWoodFraming,
		SupplierNotes: "Ridge beam for conventional roof framing",
	})

	l.add(model.MaterialLineItem{
		Description:   "7/16\" OSB Wall Sheathing 4x8",
		LumberSize:    "4x8",
		Quantity:      ceil(float64(est.ExteriorSqft) / 32 * 1.1),
		Length:        "8'",
		Unit:          "Sheet",
		Subcategory:   subcatStructuralPanels,
		SupplierNotes: "7/16\" OSB structural sheathing",
	})
	l.add(model.MaterialLineItem{
		Description:   "5/8\" Plywood Roof Sheathing 4x8",
		LumberSize:    "4x8",
		Quantity:      ceil(roof / 32 * 1.1),
		Length:        "8'",
		Unit:          "Sheet",
		Subcategory:   subcatStructuralPanels,
		SupplierNotes: "5/8\" CDX plywood, 32 sqft per sheet",
	})

	if est.FoundationType.HasRaisedFloor(est.NumStories) || est.FoundationType == model.FoundationBasement {
		l.add(model.MaterialLineItem{
			Description:   "3/4\" T&G Plywood Subfloor 4x8",
			LumberSize:    "4x8",
			Quantity:      ceil(floor / 32 * 1.05),
			Length:        "8'",
			Unit:          "Sheet",
			Subcategory:   subcatStructuralPanels,
			SupplierNotes: "3/4\" tongue & groove subfloor plywood",
		})
	}

	return l.items
}

// Connectors is the Simpson Strong-Tie hardware list.
func Connectors(est model.BlueprintEstimate) []model.MaterialLineItem {
	est = sanitize(est)
	l := newLines(ConnectorLineStart)

	trusses := ceil(float64(est.RoofSqft) / 32)
	l.add(model.MaterialLineItem{
		Description:   "Simpson H2.5A Hurricane Ties",
		LumberSize:    notApplicable,
		Quantity:      trusses * 2,
		Length:        notApplicable,
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Secures trusses to top plate. 2 per truss.",
	})
	l.add(model.MaterialLineItem{
		Description:   "Simpson LSTA12 Truss Bracing Straps",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(trusses) / 4),
		Length:        "12\"",
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Lateral bracing at truss webs and purlins",
	})
	l.add(model.MaterialLineItem{
		Description:   "Simpson A35 Framing Angles",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.WallLinearFt) / 8),
		Length:        notApplicable,
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Blocking and corner connections",
	})

	if est.FoundationType.HasRaisedFloor(est.NumStories) {
		joists := ceil(float64(est.FloorSqft) / 16 * 0.75)
		l.add(model.MaterialLineItem{
			Description:   "Simpson LUS210 Joist Hangers 2x10",
			LumberSize:    "2x10",
			Quantity:      joists * 2,
			Length:        notApplicable,
			Unit:          "Each",
			Subcategory:   subcatWoodConnectors,
			SupplierNotes: "Face-mount joist hangers, each end of joist",
		})
	}

	posts := ceil(float64(est.TotalSqft) / 500)
	if posts < 4 {
		posts = 4
	}
	l.add(model.MaterialLineItem{
		Description:   "Simpson ABU44 Adjustable Post Base 4x4",
		LumberSize:    "4x4",
		Quantity:      posts,
		Length:        notApplicable,
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Standoff post base for 4x4 posts to concrete",
	})
	l.add(model.MaterialLineItem{
		Description:   "Simpson MST37 Strap Ties",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.WallLinearFt) / 20),
		Length:        "37\"",
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Wall plate splices and rafter ties",
	})

	return l.items
}

// Fasteners is the nail list, sold by the pound.
func Fasteners(est model.BlueprintEstimate) []model.MaterialLineItem {
	est = sanitize(est)
	l := newLines(FastenerLineStart)

	l.add(model.MaterialLineItem{
		Description:   "16d Common Nails (3.5\")",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.TotalSqft) / 50),
		Length:        "3.5\"",
		Unit:          "lb",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Framing nails for structural connections",
	})
	l.add(model.MaterialLineItem{
		Description:   "10d Common Nails (3\")",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.RoofSqft+est.ExteriorSqft) / 100),
		Length:        "3\"",
		Unit:          "lb",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Sheathing and blocking nails",
	})
	l.add(model.MaterialLineItem{
		Description:   "8d Common Nails (2.5\")",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.FloorSqft) / 100),
		Length:        "2.5\"",
		Unit:          "lb",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Subfloor and light framing",
	})
	l.add(model.MaterialLineItem{
		Description:   "10d x 1.5\" Connector Nails",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.TotalSqft) / 100),
		Length:        "1.5\"",
		Unit:          "lb",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "For Simpson Strong-Tie connectors",
	})

	return l.items
}

// Anchors is the foundation anchor list. The sill perimeter is taken from
// a square footprint of TotalSqft.
func Anchors(est model.BlueprintEstimate) []model.MaterialLineItem {
	est = sanitize(est)
	l := newLines(AnchorLineStart)
	perimeter := math.Sqrt(float64(est.TotalSqft)) * 4

	l.add(model.MaterialLineItem{
		Description:   "1/2\" x 10\" J-Bolts (Foundation Anchors)",
		LumberSize:    notApplicable,
		Quantity:      ceil(perimeter / 4),
		Length:        "10\"",
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Embed in concrete, sill plate anchors @ 4' OC max",
	})
	l.add(model.MaterialLineItem{
		Description:   "Wedge Anchor 1/2\" x 5.5\"",
		LumberSize:    notApplicable,
		Quantity:      ceil(perimeter / 16),
		Length:        "5.5\"",
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Ledger board and retrofit anchor connections",
	})
	// boxes of 25
	l.add(model.MaterialLineItem{
		Description:   "Tapcon 1/4\" x 2.75\" Concrete Screws",
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.TotalSqft)/200) * 25,
		Length:        "2.75\"",
		Unit:          "Each",
		Subcategory:   subcatWoodConnectors,
		SupplierNotes: "Concrete/block connections, box of 25",
	})

	return l.items
}

// sanitize zeroes negative geometry so the formulas stay well defined.
func sanitize(est model.BlueprintEstimate) model.BlueprintEstimate {
	for _, p := range []*int{
		&est.TotalSqft, &est.WallLinearFt, &est.CeilingSqft, &est.FloorSqft,
		&est.ExteriorSqft, &est.RoofSqft, &est.Perimeter, &est.NumDoors, &est.NumWindows,
	} {
		if *p < 0 {
			*p = 0
		}
	}
	if est.NumStories < 1 {
		est.NumStories = 1
	}
	if est.FoundationType == "" {
		est.FoundationType = model.FoundationSlab
	}
	return est
}
