package takeoff

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/quantity"
)

func TestAggregateQuantities_SumsAcrossResults(t *testing.T) {
	a := quantity.Calculate(quantity.Drywall{LengthFt: 200, HeightFt: 8})
	b := quantity.Calculate(quantity.Drywall{LengthFt: 100, HeightFt: 8})
	c := quantity.Calculate(quantity.HVAC{SqFtCoverage: 400, NumVents: 2})

	list := AggregateQuantities(a, b, c)

	if got, _ := list.Get("drywall_sheets"); got != 75 {
		t.Errorf("expected 75 sheets, got %d", got)
	}
	// hangers appear in hvac only here
	if got, _ := list.Get("hangers"); got != 10 {
		t.Errorf("expected 10 hangers, got %d", got)
	}
	if list.Entries[0].Item != "drywall_sheets" {
		t.Errorf("expected first-seen order, got %s first", list.Entries[0].Item)
	}
	if list.Entries[0].Unit != "sheets" {
		t.Errorf("expected unit sheets, got %s", list.Entries[0].Unit)
	}
}

func TestAggregateQuantities_SingleSourceIsIdentity(t *testing.T) {
	r := quantity.Calculate(quantity.Plumbing{PipeRunsFt: 120, NumFixtures: 4})
	list := AggregateQuantities(r)

	if len(list.Entries) != len(r.Items) {
		t.Fatalf("expected %d entries, got %d", len(r.Items), len(list.Entries))
	}
	for i, it := range r.Items {
		if list.Entries[i].Item != it.Key || list.Entries[i].Quantity != it.Quantity {
			t.Errorf("entry %d: expected %s=%d, got %s=%d", i, it.Key, it.Quantity, list.Entries[i].Item, list.Entries[i].Quantity)
		}
	}
}

func TestAggregateQuantities_Empty(t *testing.T) {
	list := AggregateQuantities()
	if len(list.Entries) != 0 {
		t.Errorf("expected empty list, got %d entries", len(list.Entries))
	}
	list = AggregateQuantities(quantity.CalculateTrade("unknown", nil))
	if len(list.Entries) != 0 {
		t.Errorf("placeholder result should add nothing, got %d", len(list.Entries))
	}
}

func TestAggregateLineItems_SingleListIsIdentity(t *testing.T) {
	est := model.BlueprintEstimate{
		TotalSqft: 2400, WallLinearFt: 200, CeilingSqft: 2400, FloorSqft: 2400,
		ExteriorSqft: 1568, RoofSqft: 2760, NumDoors: 8, NumWindows: 14,
		NumStories: 1, FoundationType: model.FoundationSlab,
	}
	items := quantity.Generate(est)
	merged := AggregateLineItems(items)

	if len(merged) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(merged))
	}
	for i := range items {
		if merged[i].Quantity != items[i].Quantity || merged[i].Description != items[i].Description {
			t.Errorf("item %d changed: %+v -> %+v", i, items[i], merged[i])
		}
		if merged[i].OrderLine != items[i].OrderLine {
			t.Errorf("expected line %d, got %d", items[i].OrderLine, merged[i].OrderLine)
		}
	}
}

func TestAggregateLineItems_MergesAndNormalizesUnits(t *testing.T) {
	first := []model.MaterialLineItem{
		{OrderLine: 1, Description: "2x4x96 (8') Studs", LumberSize: "2x4", Quantity: 10, Unit: "Each"},
		{OrderLine: 2, Description: "16d Common Nails (3.5\")", LumberSize: "N/A", Quantity: 5, Unit: "lb"},
	}
	second := []model.MaterialLineItem{
		{OrderLine: 7, Description: "2x4x96 (8') Studs", LumberSize: "2x4", Quantity: 4, Unit: "ea"},
		{OrderLine: 8, Description: "2x4x96 (8') Studs", LumberSize: "2x6", Quantity: 3, Unit: "each"},
		{OrderLine: 9, Description: "16d Common Nails (3.5\")", LumberSize: "N/A", Quantity: 2, Unit: "lbs"},
	}

	merged := AggregateLineItems(first, second)
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged lines, got %d", len(merged))
	}
	if merged[0].Quantity != 14 || merged[0].Unit != "Each" {
		t.Errorf("expected 14 Each studs, got %d %s", merged[0].Quantity, merged[0].Unit)
	}
	if merged[1].Quantity != 7 || merged[1].Unit != "lb" {
		t.Errorf("expected 7 lb nails, got %d %s", merged[1].Quantity, merged[1].Unit)
	}
	if merged[2].LumberSize != "2x6" || merged[2].OrderLine != 8 {
		t.Errorf("different lumber size should stay separate, got %+v", merged[2])
	}
	if first[0].Quantity != 10 {
		t.Error("input list was mutated")
	}
}

func TestAggregateLineItems_KeepsOrderLineGroups(t *testing.T) {
	small := model.BlueprintEstimate{
		TotalSqft: 1200, WallLinearFt: 140, CeilingSqft: 1200, FloorSqft: 1200,
		ExteriorSqft: 1100, RoofSqft: 1380, Perimeter: 140, NumDoors: 4, NumWindows: 8,
		NumStories: 1, FoundationType: model.FoundationSlab,
	}
	large := small
	large.TotalSqft, large.NumStories, large.FoundationType = 3000, 2, model.FoundationCrawlspace

	merged := AggregateLineItems(quantity.Generate(small), quantity.Generate(large))
	for i := 1; i < len(merged); i++ {
		if merged[i].OrderLine < merged[i-1].OrderLine {
			t.Fatalf("line %d (%d) sorts before line %d (%d)", i, merged[i].OrderLine, i-1, merged[i-1].OrderLine)
		}
	}

	starts := map[int]bool{}
	for _, it := range merged {
		starts[it.OrderLine] = true
	}
	for _, start := range []int{1, 100, 200, 300} {
		if !starts[start] {
			t.Errorf("expected a line numbered %d after merging", start)
		}
	}
}

func TestUnitFor(t *testing.T) {
	if got := UnitFor("drywall_sheets"); got != "sheets" {
		t.Errorf("expected sheets, got %s", got)
	}
	if got := UnitFor("stucco_bags"); got != "80lb bags" {
		t.Errorf("expected 80lb bags, got %s", got)
	}
	if got := UnitFor("mystery_item"); got != "units" {
		t.Errorf("expected fallback units, got %s", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"joint_compound_gallons": "Joint Compound Gallons",
		"drywall_sheets":         "Drywall Sheets",
		"studs":                  "Studs",
		"":                       "",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := map[string]string{
		"ea":        "Each",
		" EACH ":    "Each",
		"Sheets":    "Sheet",
		"LBS":       "lb",
		"gal":       "Gallon",
		"linear ft": "linear ft",
	}
	for in, want := range tests {
		if got := NormalizeUnit(in); got != want {
			t.Errorf("NormalizeUnit(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	list := AggregateQuantities(quantity.Calculate(quantity.Drywall{LengthFt: 200, HeightFt: 8}))
	var buf bytes.Buffer
	if err := WriteCSV(&buf, list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Item,Quantity,Unit" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Drywall Sheets,50,sheets" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if len(lines) != 1+len(list.Entries) {
		t.Errorf("expected %d lines, got %d", 1+len(list.Entries), len(lines))
	}
}

func TestLineItemsCSV_RoundTrip(t *testing.T) {
	items := []model.MaterialLineItem{
		{OrderLine: 1, Description: "7/16\" OSB Wall Sheathing 4x8", LumberSize: "4x8", Quantity: 54, Length: "8'", Unit: "Sheet", Division: model.DivisionWood, Subcategory: "06 12 00", SupplierNotes: "7/16\" OSB structural sheathing"},
		{OrderLine: 100, Description: "Simpson H2.5A Hurricane Ties", LumberSize: "N/A", Quantity: 174, Length: "N/A", Unit: "Each", Division: model.DivisionWood, Subcategory: "06 05 23", SupplierNotes: "Secures trusses to top plate. 2 per truss."},
	}

	var buf bytes.Buffer
	if err := WriteLineItemsCSV(&buf, items); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	got, err := ReadLineItemsCSV(&buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, items)
	}
}

func TestReadLineItemsCSV_BadQuantity(t *testing.T) {
	in := "Line,Description,Lumber Size,Quantity,Length,Unit,Division,Subcategory,Supplier Notes\n" +
		"1,Studs,2x4,many,8',Each,06,06 11 00,\n"
	if _, err := ReadLineItemsCSV(strings.NewReader(in)); err == nil {
		t.Error("expected error for non-numeric quantity")
	}
}

func TestDivisionTotals(t *testing.T) {
	items := []model.MaterialLineItem{
		{Division: model.DivisionWood, Quantity: 3},
		{Division: model.DivisionFinishes, Quantity: 4},
		{Division: model.DivisionWood, Quantity: 2},
	}
	totals := DivisionTotals(items)
	if totals[model.DivisionWood] != 5 || totals[model.DivisionFinishes] != 4 {
		t.Errorf("unexpected totals %v", totals)
	}
}
