package quantity

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ppiankov/planreader/internal/model"
)

func slabEstimate() model.BlueprintEstimate {
	return model.BlueprintEstimate{
		TotalSqft:      2400,
		WallLinearFt:   200,
		CeilingSqft:    2400,
		FloorSqft:      2400,
		ExteriorSqft:   1568,
		RoofSqft:       2760,
		Perimeter:      196,
		NumDoors:       8,
		NumWindows:     14,
		NumStories:     1,
		FoundationType: model.FoundationSlab,
	}
}

func quantities(items []model.MaterialLineItem) map[string]int {
	m := make(map[string]int, len(items))
	for _, it := range items {
		m[it.Description] = it.Quantity
	}
	return m
}

func TestGenerate_SlabQuantities(t *testing.T) {
	got := quantities(Generate(slabEstimate()))
	want := map[string]int{
		"2x4x96 (8') Studs":                         165,
		"2x4x10 Top/Bottom Plates":                  66,
		"2x6x8 Window/Door Headers":                 44,
		"2x8x10 Beams/Large Headers":                11,
		"2x6x16 Rafters/Ceiling Joists":             115,
		"2x12x16 Ridge Beam":                        4,
		"7/16\" OSB Wall Sheathing 4x8":             54,
		"5/8\" Plywood Roof Sheathing 4x8":          95,
		"Simpson H2.5A Hurricane Ties":              174,
		"Simpson LSTA12 Truss Bracing Straps":       22,
		"Simpson A35 Framing Angles":                25,
		"Simpson ABU44 Adjustable Post Base 4x4":    5,
		"Simpson MST37 Strap Ties":                  10,
		"16d Common Nails (3.5\")":                  48,
		"10d Common Nails (3\")":                    44,
		"8d Common Nails (2.5\")":                   24,
		"10d x 1.5\" Connector Nails":               24,
		"1/2\" x 10\" J-Bolts (Foundation Anchors)": 49,
		"Wedge Anchor 1/2\" x 5.5\"":                13,
		"Tapcon 1/4\" x 2.75\" Concrete Screws":     300,
	}
	if len(got) != len(want) {
		t.Errorf("expected %d line items, got %d", len(want), len(got))
	}
	for desc, q := range want {
		if got[desc] != q {
			t.Errorf("%s: expected %d, got %d", desc, q, got[desc])
		}
	}
}

func TestGenerate_SlabOmitsFloorFraming(t *testing.T) {
	for _, it := range Generate(slabEstimate()) {
		if strings.Contains(it.Description, "Joist") && !strings.Contains(it.Description, "Ceiling") {
			t.Errorf("slab single story should not include %q", it.Description)
		}
		if strings.Contains(it.Description, "Subfloor") {
			t.Errorf("slab single story should not include %q", it.Description)
		}
	}
}

func TestGenerate_CrawlspaceIncludesFloorFraming(t *testing.T) {
	est := slabEstimate()
	est.FoundationType = model.FoundationCrawlspace
	got := quantities(Generate(est))

	want := map[string]int{
		"2x10x12 Floor Joists":              124,
		"2x10x16 Rim Joists":                14,
		"3/4\" T&G Plywood Subfloor 4x8":    79,
		"Simpson LUS210 Joist Hangers 2x10": 226,
	}
	for desc, q := range want {
		if got[desc] != q {
			t.Errorf("%s: expected %d, got %d", desc, q, got[desc])
		}
	}
}

func TestGenerate_BasementAddsSubfloorOnly(t *testing.T) {
	est := slabEstimate()
	est.FoundationType = model.FoundationBasement
	got := quantities(Generate(est))

	if _, ok := got["3/4\" T&G Plywood Subfloor 4x8"]; !ok {
		t.Error("expected subfloor over basement")
	}
	if _, ok := got["2x10x12 Floor Joists"]; ok {
		t.Error("single-story basement should not add floor joists")
	}
	if _, ok := got["Simpson LUS210 Joist Hangers 2x10"]; ok {
		t.Error("single-story basement should not add joist hangers")
	}
}

func TestGenerate_MultiStoryIncludesFloorFraming(t *testing.T) {
	est := slabEstimate()
	est.NumStories = 2
	got := quantities(Generate(est))
	if _, ok := got["2x10x12 Floor Joists"]; !ok {
		t.Error("expected floor joists for two stories")
	}
}

func TestGenerate_OrderLines(t *testing.T) {
	est := slabEstimate()
	est.FoundationType = model.FoundationCrawlspace
	items := Generate(est)

	groups := map[int][]int{}
	for _, it := range items {
		groups[it.OrderLine/100] = append(groups[it.OrderLine/100], it.OrderLine)
		if it.Division != model.DivisionWood {
			t.Errorf("%s: expected division 06, got %s", it.Description, it.Division)
		}
	}

	starts := map[int]int{0: FramingLineStart, 1: ConnectorLineStart, 2: FastenerLineStart, 3: AnchorLineStart}
	for g, start := range starts {
		lines := groups[g]
		if len(lines) == 0 {
			t.Errorf("group %d empty", g)
			continue
		}
		for i, n := range lines {
			if n != start+i {
				t.Errorf("group %d line %d: expected %d, got %d", g, i, start+i, n)
			}
		}
	}
	if len(groups[0]) != 11 {
		t.Errorf("expected 11 framing lines for crawlspace, got %d", len(groups[0]))
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	est := slabEstimate()
	a := Generate(est)
	b := Generate(est)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical output for identical estimate")
	}
}

func TestGenerate_NegativeGeometry(t *testing.T) {
	est := model.BlueprintEstimate{
		TotalSqft:    -100,
		WallLinearFt: -20,
		FloorSqft:    -5,
		RoofSqft:     -5,
		NumDoors:     -1,
		NumStories:   0,
	}
	for _, it := range Generate(est) {
		if it.Quantity < 0 {
			t.Errorf("%s: expected non-negative, got %d", it.Description, it.Quantity)
		}
	}
	got := quantities(Generate(est))
	if got["Simpson ABU44 Adjustable Post Base 4x4"] != 4 {
		t.Errorf("expected post base floor of 4, got %d", got["Simpson ABU44 Adjustable Post Base 4x4"])
	}
}

func TestGenerate_WholeUnits(t *testing.T) {
	for _, it := range Generate(slabEstimate()) {
		if it.Unit == "" {
			t.Errorf("%s: missing unit", it.Description)
		}
		if it.Quantity <= 0 {
			t.Errorf("%s: expected positive quantity, got %d", it.Description, it.Quantity)
		}
	}
}
