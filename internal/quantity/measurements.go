// Package quantity turns measurements and building geometry into whole-unit
// material quantities.
//
// Every quantity is the ceiling of its raw formula value. Some items carry a
// floor of one unit. Negative inputs are treated as zero and quantities
// saturate at MaxQuantity.
package quantity

import (
	"math"
	"strings"
)

// Trade names a per-trade calculator.
type Trade string

const (
	TradeDrywall       Trade = "drywall"
	TradeHVAC          Trade = "hvac"
	TradePainting      Trade = "painting"
	TradeElectrical    Trade = "electrical"
	TradePlumbing      Trade = "plumbing"
	TradeStucco        Trade = "stucco"
	TradeExteriorPaint Trade = "exterior paint"
	TradeGeneral       Trade = "general"
)

// Trades lists the recognized trades in display order.
func Trades() []Trade {
	return []Trade{TradeDrywall, TradeHVAC, TradePainting, TradeElectrical, TradePlumbing, TradeStucco, TradeExteriorPaint}
}

// ParseTrade resolves a trade name case-insensitively. Underscores and
// hyphens are accepted in place of spaces. Unknown names map to TradeGeneral.
func ParseTrade(name string) Trade {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", " ", "-", " ").Replace(n)
	switch t := Trade(n); t {
	case TradeDrywall, TradeHVAC, TradePainting, TradeElectrical, TradePlumbing, TradeStucco, TradeExteriorPaint:
		return t
	}
	return TradeGeneral
}

// Measurements is one of the per-trade measurement records below.
type Measurements interface {
	Trade() Trade
	isMeasurements()
}

// Drywall measures a wall run. HeightFt defaults to 8.
type Drywall struct {
	LengthFt float64 `json:"length_ft" yaml:"length_ft"`
	HeightFt float64 `json:"height_ft" yaml:"height_ft"`
}

// HVAC measures conditioned floor area. NumVents defaults to 1.
type HVAC struct {
	SqFtCoverage float64 `json:"sq_ft_coverage" yaml:"sq_ft_coverage"`
	NumVents     int     `json:"num_vents" yaml:"num_vents"`
}

// Painting measures interior wall area. Coats defaults to 2.
type Painting struct {
	SqFt  float64 `json:"sq_ft" yaml:"sq_ft"`
	Coats int     `json:"coats" yaml:"coats"`
}

// Electrical counts devices and wire runs.
type Electrical struct {
	NumOutlets  int     `json:"num_outlets" yaml:"num_outlets"`
	NumSwitches int     `json:"num_switches" yaml:"num_switches"`
	WireRunsFt  float64 `json:"wire_runs_ft" yaml:"wire_runs_ft"`
}

// Plumbing measures pipe runs and fixtures.
type Plumbing struct {
	PipeRunsFt  float64 `json:"pipe_runs_ft" yaml:"pipe_runs_ft"`
	NumFixtures int     `json:"num_fixtures" yaml:"num_fixtures"`
}

// Stucco measures exterior wall area. PerimeterFt sizes the weep screed.
type Stucco struct {
	SqFt        float64 `json:"sq_ft" yaml:"sq_ft"`
	PerimeterFt float64 `json:"perimeter_ft" yaml:"perimeter_ft"`
}

// ExteriorPaint measures exterior wall area. Coats defaults to 2.
type ExteriorPaint struct {
	SqFt  float64 `json:"sq_ft" yaml:"sq_ft"`
	Coats int     `json:"coats" yaml:"coats"`
}

// General is the placeholder for trades without a calculator.
type General struct {
	Name        string
	Description string
}

func (Drywall) Trade() Trade       { return TradeDrywall }
func (HVAC) Trade() Trade          { return TradeHVAC }
func (Painting) Trade() Trade      { return TradePainting }
func (Electrical) Trade() Trade    { return TradeElectrical }
func (Plumbing) Trade() Trade      { return TradePlumbing }
func (Stucco) Trade() Trade        { return TradeStucco }
func (ExteriorPaint) Trade() Trade { return TradeExteriorPaint }
func (General) Trade() Trade       { return TradeGeneral }

func (Drywall) isMeasurements()       {}
func (HVAC) isMeasurements()          {}
func (Painting) isMeasurements()      {}
func (Electrical) isMeasurements()    {}
func (Plumbing) isMeasurements()      {}
func (Stucco) isMeasurements()        {}
func (ExteriorPaint) isMeasurements() {}
func (General) isMeasurements()       {}

// ParseMeasurements converts a loose key/value payload into the typed
// record for trade. Missing keys take their defaults; integer fields are
// truncated and saturate at MaxQuantity.
func ParseMeasurements(trade string, raw map[string]float64) Measurements {
	get := func(key string, def float64) float64 {
		if v, ok := raw[key]; ok {
			return v
		}
		return def
	}

	count := func(v float64) int {
		v = math.Trunc(nonNeg(v))
		if v >= MaxQuantity {
			return MaxQuantity
		}
		return int(v)
	}

	switch ParseTrade(trade) {
	case TradeDrywall:
		return Drywall{LengthFt: get("length_ft", 0), HeightFt: get("height_ft", 8)}
	case TradeHVAC:
		return HVAC{SqFtCoverage: get("sq_ft_coverage", 0), NumVents: count(get("num_vents", 1))}
	case TradePainting:
		return Painting{SqFt: get("sq_ft", 0), Coats: count(get("coats", 2))}
	case TradeElectrical:
		return Electrical{
			NumOutlets:  count(get("num_outlets", 0)),
			NumSwitches: count(get("num_switches", 0)),
			WireRunsFt:  get("wire_runs_ft", 0),
		}
	case TradePlumbing:
		return Plumbing{PipeRunsFt: get("pipe_runs_ft", 0), NumFixtures: count(get("num_fixtures", 0))}
	case TradeStucco:
		return Stucco{SqFt: get("sq_ft", get("sqft", 0)), PerimeterFt: get("perimeter_ft", 0)}
	case TradeExteriorPaint:
		return ExteriorPaint{SqFt: get("sq_ft", get("sqft", 0)), Coats: count(get("coats", 2))}
	}
	return General{Name: trade}
}
