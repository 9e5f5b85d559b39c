package quantity

import (
	"strings"
	"testing"

	"github.com/ppiankov/planreader/internal/model"
)

func TestManualEstimate(t *testing.T) {
	est := ManualEstimate(ManualInput{
		TotalSqft:      2400,
		WallLinearFt:   200,
		NumStories:     1,
		FoundationType: "Slab",
		NumDoors:       8,
		NumWindows:     14,
	})

	if est.TotalSqft != 2400 || est.FloorSqft != 2400 || est.CeilingSqft != 2400 {
		t.Errorf("expected 2400 sqft areas, got %+v", est)
	}
	if est.WallLinearFt != 200 {
		t.Errorf("expected entered wall length 200, got %d", est.WallLinearFt)
	}
	if est.ExteriorSqft != 1568 {
		t.Errorf("expected exterior 1568, got %d", est.ExteriorSqft)
	}
	if est.RoofSqft != 2760 {
		t.Errorf("expected roof 2760, got %d", est.RoofSqft)
	}
	if est.Perimeter != 196 {
		t.Errorf("expected perimeter 196, got %d", est.Perimeter)
	}
	if est.FoundationType != model.FoundationSlab {
		t.Errorf("expected slab, got %s", est.FoundationType)
	}
}

func TestManualEstimate_Defaults(t *testing.T) {
	est := ManualEstimate(ManualInput{TotalSqft: 2400, NumStories: 2, FoundationType: "CRAWLSPACE"})
	if est.WallLinearFt != 392 {
		t.Errorf("expected wall length from perimeter x stories = 392, got %d", est.WallLinearFt)
	}
	if est.ExteriorSqft != 3136 {
		t.Errorf("expected exterior 3136, got %d", est.ExteriorSqft)
	}
	if est.NumDoors != 3 || est.NumWindows != 6 {
		t.Errorf("expected 3 doors and 6 windows, got %d/%d", est.NumDoors, est.NumWindows)
	}
	if est.FoundationType != model.FoundationCrawlspace {
		t.Errorf("expected crawlspace, got %s", est.FoundationType)
	}

	est = ManualEstimate(ManualInput{TotalSqft: 1000, NumStories: 0})
	if est.NumStories != 1 {
		t.Errorf("expected stories floored at 1, got %d", est.NumStories)
	}
}

func TestGenerateFinishes_FieldStandards(t *testing.T) {
	items := GenerateFinishes(slabEstimate())
	got := quantities(items)

	// walls 200 lf x 8 ft + 2400 ceiling = 4000 sqft of board
	want := map[string]int{
		"Drywall 1/2\" 4x8 Sheets":              125,
		"Joint Compound (Mud) 50lb Box":         4,
		"Interior Latex Paint (2 Coats)":        20,
		"Stucco Base Coat (Scratch/Brown) 80lb": 72,
		"Stucco Finish Coat 80lb":               53,
		"Weep Screed 10ft":                      20,
	}
	for desc, q := range want {
		if got[desc] != q {
			t.Errorf("%s: expected %d, got %d", desc, q, got[desc])
		}
	}

	for i, it := range items {
		if it.OrderLine != FinishLineStart+i {
			t.Errorf("expected order line %d, got %d", FinishLineStart+i, it.OrderLine)
		}
	}
}

func TestGenerateFinishes_UnitsAndAttribution(t *testing.T) {
	var attributed int
	for _, it := range GenerateFinishes(slabEstimate()) {
		desc := strings.ToLower(it.Description)
		unit := strings.ToLower(it.Unit)
		switch {
		case strings.Contains(desc, "drywall") && !strings.Contains(unit, "sheet"):
			t.Errorf("drywall should be sold by the sheet, got %s", it.Unit)
		case strings.Contains(desc, "joint compound") && !strings.Contains(unit, "50lb"):
			t.Errorf("joint compound should be sold by the 50lb box, got %s", it.Unit)
		case strings.Contains(desc, "paint") && !strings.Contains(unit, "gallon"):
			t.Errorf("paint should be sold by the gallon, got %s", it.Unit)
		case strings.Contains(desc, "stucco") && !strings.Contains(unit, "80lb"):
			t.Errorf("stucco should be sold by the 80lb bag, got %s", it.Unit)
		}
		if strings.Contains(it.SupplierNotes, "USA Construction Inc.") {
			attributed++
		}
	}
	if attributed != 4 {
		t.Errorf("expected 4 attributed lines, got %d", attributed)
	}
}

func TestFullTakeoff(t *testing.T) {
	est := slabEstimate()
	est.Filename = "plan.pdf"
	tk := FullTakeoff(est)

	if tk.ID == "" {
		t.Error("expected takeoff ID")
	}
	if tk.Project.Filename != "plan.pdf" || tk.Project.Doors != 8 {
		t.Errorf("unexpected project info %+v", tk.Project)
	}
	if tk.Summary.TotalLineItems != len(tk.Materials) {
		t.Errorf("summary count %d does not match %d materials", tk.Summary.TotalLineItems, len(tk.Materials))
	}
	if len(tk.Materials) != 26 {
		t.Errorf("expected 20 framing and 6 finish lines, got %d", len(tk.Materials))
	}
	if !strings.Contains(tk.Summary.Note, FieldStandardsAttribution) {
		t.Errorf("expected attribution in summary, got %q", tk.Summary.Note)
	}

	other := FullTakeoff(est)
	if other.ID == tk.ID {
		t.Error("expected a fresh ID per takeoff")
	}
}
