package quantity

import (
	"math"

	"github.com/ppiankov/planreader/internal/catalog"
)

// Item is one calculated quantity, keyed by a snake_case item name.
type Item struct {
	Key      string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Result is the ordered output of a trade calculation.
type Result struct {
	Trade Trade  `json:"trade"`
	Items []Item `json:"items"`
	Note  string `json:"note,omitempty"`
}

// Get returns the quantity for key.
func (r Result) Get(key string) (int, bool) {
	for _, it := range r.Items {
		if it.Key == key {
			return it.Quantity, true
		}
	}
	return 0, false
}

// Map returns the items as a map. Order is lost.
func (r Result) Map() map[string]int {
	m := make(map[string]int, len(r.Items))
	for _, it := range r.Items {
		m[it.Key] = it.Quantity
	}
	return m
}

// GeneralNote is attached to placeholder results.
const GeneralNote = "Custom materials - add manually"

// CalculateTrade parses raw and calculates it. Unknown trades yield an
// empty placeholder result.
func CalculateTrade(trade string, raw map[string]float64) Result {
	return Calculate(ParseMeasurements(trade, raw))
}

// Calculate dispatches on the measurement variant.
func Calculate(m Measurements) Result {
	switch v := m.(type) {
	case Drywall:
		return drywall(v)
	case HVAC:
		return hvac(v)
	case Painting:
		return painting(v)
	case Electrical:
		return electrical(v)
	case Plumbing:
		return plumbing(v)
	case Stucco:
		return stucco(v)
	case ExteriorPaint:
		return exteriorPaint(v)
	}
	return Result{Trade: TradeGeneral, Note: GeneralNote}
}

func drywall(m Drywall) Result {
	length := nonNeg(m.LengthFt)
	sqft := length * nonNeg(m.HeightFt)

	sheets := ceil(sqft / 32)
	return Result{Trade: TradeDrywall, Items: []Item{
		{"drywall_sheets", sheets},
		{"studs", ceil(length/1.33) + 1}, // 16" O.C. plus the starter
		{"screws", sheets * 32},
		{"joint_compound_gallons", ceil(sqft / 100)},
		{"tape_rolls", atLeastOne(ceil(sqft / 500))},
	}}
}

func hvac(m HVAC) Result {
	duct := ceil(nonNeg(m.SqFtCoverage) / 10)
	vents := nonNegInt(m.NumVents)
	return Result{Trade: TradeHVAC, Items: []Item{
		{"ductwork_linear_ft", duct},
		{"duct_tape_rolls", atLeastOne(ceil(float64(duct) / 50))},
		{"hangers", ceil(float64(duct) / 4)},
		{"registers", vents},
		{"flex_connectors", vents * 2},
	}}
}

func painting(m Painting) Result {
	sqft := nonNeg(m.SqFt)
	return Result{Trade: TradePainting, Items: []Item{
		{"paint_gallons", ceil(sqft * float64(nonNegInt(m.Coats)) / 350)},
		{"primer_gallons", ceil(sqft / 400)},
		{"rollers", atLeastOne(ceil(sqft / 500))},
		{"brushes", atLeastOne(ceil(sqft / 200))},
		{"drop_cloths", atLeastOne(ceil(sqft / 100))},
		{"painters_tape_rolls", atLeastOne(ceil(sqft / 50))},
	}}
}

func electrical(m Electrical) Result {
	wire := ceil(nonNeg(m.WireRunsFt) * 1.2)
	outlets := nonNegInt(m.NumOutlets)
	switches := nonNegInt(m.NumSwitches)
	boxes := outlets + switches
	return Result{Trade: TradeElectrical, Items: []Item{
		{"wire_feet", wire},
		{"outlet_boxes", outlets},
		{"switch_boxes", switches},
		{"wire_nuts", boxes * 10},
		{"staples", ceil(float64(wire) / 2)},
		{"outlets", outlets},
		{"switches", switches},
	}}
}

func plumbing(m Plumbing) Result {
	pipe := ceil(nonNeg(m.PipeRunsFt) * 1.15)
	fixtures := nonNegInt(m.NumFixtures)
	fittings := ceil(float64(fixtures*3) + float64(pipe)/10)
	return Result{Trade: TradePlumbing, Items: []Item{
		{"pipe_feet", pipe},
		{"fittings", fittings},
		{"hangers", ceil(float64(pipe) / 4)},
		{"adhesive_units", atLeastOne(ceil(float64(fittings) / 20))},
		{"fixtures", fixtures},
	}}
}

// stucco sizes bags from the catalog's base and finish coat coverage.
func stucco(m Stucco) Result {
	sqft := nonNeg(m.SqFt)
	return Result{Trade: TradeStucco, Items: []Item{
		{"stucco_bags", ceil(sqft / catalog.StuccoBaseCoat().Coverage)},
		{"finish_coat_bags", ceil(sqft / catalog.StuccoFinishCoat().Coverage)},
		{"weep_screed_pieces", ceil(nonNeg(m.PerimeterFt) / catalog.WeepScreed().LengthFt)},
	}}
}

func exteriorPaint(m ExteriorPaint) Result {
	sqft := nonNeg(m.SqFt)
	return Result{Trade: TradeExteriorPaint, Items: []Item{
		{"exterior_paint_gallons", ceil(sqft * float64(nonNegInt(m.Coats)) / 300)},
		{"exterior_primer_gallons", ceil(sqft / 400)},
		{"rollers", atLeastOne(ceil(sqft / 500))},
		{"brushes", atLeastOne(ceil(sqft / 200))},
	}}
}

// MaxQuantity caps every computed quantity. Larger or infinite inputs
// saturate here instead of overflowing int.
const MaxQuantity = math.MaxInt32

func ceil(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= MaxQuantity {
		return MaxQuantity
	}
	return int(math.Ceil(v))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func nonNeg(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func nonNegInt(n int) int {
	if n < 0 {
		return 0
	}
	return min(n, MaxQuantity)
}
