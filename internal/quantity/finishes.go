package quantity

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/planreader/internal/catalog"
	"github.com/ppiankov/planreader/internal/geometry"
	"github.com/ppiankov/planreader/internal/model"
)

// FieldStandardsAttribution credits the coverage rates used for finishes.
const FieldStandardsAttribution = "Verified Field Standards by USA Construction Inc."

const (
	subcatGypsumBoard = "09 29 00"
	subcatPainting    = "09 90 00"
	subcatCladding    = "07 46 00"
)

// GenerateFinishes produces the Division 07 stucco and Division 09
// drywall/paint lines, numbered from FinishLineStart. Drywall covers the
// wall runs at 8 ft plus the ceiling.
func GenerateFinishes(est model.BlueprintEstimate) []model.MaterialLineItem {
	est = sanitize(est)
	l := newLines(FinishLineStart)

	sheet := catalog.DrywallSheet()
	compound := catalog.JointCompound()
	base := catalog.StuccoBaseCoat()
	finish := catalog.StuccoFinishCoat()

	boardSqft := float64(est.WallLinearFt*geometry.StoryHeightFt + est.CeilingSqft)
	exterior := float64(est.ExteriorSqft)

	l.add(model.MaterialLineItem{
		Description:   "Drywall 1/2\" 4x8 Sheets",
		LumberSize:    sheet.Size,
		Quantity:      ceil(boardSqft / sheet.Coverage),
		Length:        "8'",
		Unit:          "Sheet",
		Division:      model.DivisionFinishes,
		Subcategory:   subcatGypsumBoard,
		SupplierNotes: fmt.Sprintf("%s: %g sqft per sheet, walls and ceilings", FieldStandardsAttribution, sheet.Coverage),
	})
	l.add(model.MaterialLineItem{
		Description:   "Joint Compound (Mud) 50lb Box",
		LumberSize:    notApplicable,
		Quantity:      ceil(boardSqft * compound.LbsPerSqFt / 50),
		Length:        notApplicable,
		Unit:          compound.Unit,
		Division:      model.DivisionFinishes,
		Subcategory:   subcatGypsumBoard,
		SupplierNotes: fmt.Sprintf("%s: %g lbs per sqft of board", FieldStandardsAttribution, compound.LbsPerSqFt),
	})
	l.add(model.MaterialLineItem{
		Description:   "Interior Latex Paint (2 Coats)",
		LumberSize:    notApplicable,
		Quantity:      ceil(boardSqft / catalog.PaintCoverage()),
		Length:        notApplicable,
		Unit:          "Gallon",
		Division:      model.DivisionFinishes,
		Subcategory:   subcatPainting,
		SupplierNotes: fmt.Sprintf("%s: %g sqft per gallon for 2 coats", FieldStandardsAttribution, catalog.PaintCoverage()),
	})
	l.add(model.MaterialLineItem{
		Description:   "Stucco Base Coat (Scratch/Brown) 80lb",
		LumberSize:    notApplicable,
		Quantity:      ceil(exterior / base.Coverage),
		Length:        notApplicable,
		Unit:          base.Unit,
		Division:      model.DivisionThermalMoisture,
		Subcategory:   subcatCladding,
		SupplierNotes: fmt.Sprintf("%s: %g sqft per 80lb bag", FieldStandardsAttribution, base.Coverage),
	})
	l.add(model.MaterialLineItem{
		Description:   "Stucco Finish Coat 80lb",
		LumberSize:    notApplicable,
		Quantity:      ceil(exterior / finish.Coverage),
		Length:        notApplicable,
		Unit:          finish.Unit,
		Division:      model.DivisionThermalMoisture,
		Subcategory:   subcatCladding,
		SupplierNotes: fmt.Sprintf("%g sqft per 80lb bag", finish.Coverage),
	})
	screed := catalog.WeepScreed()
	l.add(model.MaterialLineItem{
		Description:   screed.Name,
		LumberSize:    notApplicable,
		Quantity:      ceil(float64(est.Perimeter) / screed.LengthFt),
		Length:        fmt.Sprintf("%g'", screed.LengthFt),
		Unit:          "Piece",
		Division:      model.DivisionThermalMoisture,
		Subcategory:   subcatCladding,
		SupplierNotes: "Foundation line at stucco walls",
	})

	return l.items
}

// FullTakeoff bundles the Division 06 list and the finishes into a takeoff
// with a fresh ID.
func FullTakeoff(est model.BlueprintEstimate) model.Takeoff {
	materials := append(Generate(est), GenerateFinishes(est)...)
	return model.Takeoff{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Project: model.ProjectInfo{
			Filename:     est.Filename,
			PageCount:    est.PageCount,
			TotalSqft:    est.TotalSqft,
			WallLinearFt: est.WallLinearFt,
			Stories:      est.NumStories,
			Foundation:   est.FoundationType,
			Doors:        est.NumDoors,
			Windows:      est.NumWindows,
		},
		Materials: materials,
		Summary: model.TakeoffSummary{
			TotalLineItems: len(materials),
			DivisionsIncluded: []string{
				"06 - Wood, Plastics, Composites",
				"07 - Thermal and Moisture Protection",
				"09 - Finishes",
			},
			Note: "All quantities rounded UP to whole numbers for supplier ordering. " + FieldStandardsAttribution,
		},
	}
}

// ManualInput is a hand-entered building description.
type ManualInput struct {
	Filename       string  `json:"filename,omitempty" yaml:"filename"`
	TotalSqft      float64 `json:"total_sqft" yaml:"total_sqft"`
	WallLinearFt   float64 `json:"wall_linear_ft" yaml:"wall_linear_ft"`
	NumStories     int     `json:"num_stories" yaml:"num_stories"`
	FoundationType string  `json:"foundation_type" yaml:"foundation_type"`
	NumDoors       int     `json:"num_doors" yaml:"num_doors"`
	NumWindows     int     `json:"num_windows" yaml:"num_windows"`
}

// ManualEstimate derives the remaining geometry from hand-entered values.
// Entered values are trusted and not clamped. A missing wall length
// falls back to the square-footprint perimeter times stories.
func ManualEstimate(in ManualInput) model.BlueprintEstimate {
	stories := in.NumStories
	if stories < 1 {
		stories = 1
	}
	sqft := nonNeg(in.TotalSqft)
	perimeter := math.Sqrt(sqft) * 4

	wall := ceil(in.WallLinearFt)
	if wall == 0 {
		wall = ceil(perimeter * float64(stories))
	}

	doors, windows := in.NumDoors, in.NumWindows
	if doors <= 0 {
		doors = geometry.MinDoors
	}
	if windows <= 0 {
		windows = geometry.MinWindows
	}

	return model.BlueprintEstimate{
		Filename:       in.Filename,
		TotalSqft:      ceil(sqft),
		WallLinearFt:   wall,
		CeilingSqft:    ceil(sqft),
		FloorSqft:      ceil(sqft),
		ExteriorSqft:   ceil(perimeter * float64(geometry.StoryHeightFt*stories)),
		RoofSqft:       ceil(sqft * geometry.RoofPitchFactor),
		Perimeter:      ceil(perimeter),
		NumDoors:       doors,
		NumWindows:     windows,
		NumStories:     stories,
		FoundationType: model.ParseFoundationType(in.FoundationType),
	}
}
