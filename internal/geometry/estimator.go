// Package geometry infers approximate building geometry from the weak signal
// left in blueprint text: a handful of dimensions, a few phrases and the page count.
package geometry

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/planreader/internal/model"
)

// Residential calibration constants
const (
	MinPlausibleFt  = 8.0
	MaxPlausibleFt  = 200.0
	SqftPerPage     = 250.0
	MinSqft         = 1000.0
	MaxSqft         = 10000.0
	StoryHeightFt   = 8
	RoofPitchFactor = 1.15
	MinDoors        = 3
	MinWindows      = 6
)

var (
	doorPattern   = regexp.MustCompile(`door|entry|entrance|garage\s*door`)
	windowPattern = regexp.MustCompile(`window|glazing|dh|sh|casement`)
)

// Estimator turns extracted dimensions and text into a BlueprintEstimate
type Estimator struct{}

// NewEstimator creates a new geometry estimator
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate derives footprint, perimeter, stories, openings and foundation.
// It never fails: weak input falls back to page-count heuristics.
func (e *Estimator) Estimate(dims []model.ParsedDimension, text string, pageCount int) model.BlueprintEstimate {
	lower := strings.ToLower(text)
	var signals []model.Signal

	sqft, footprintSignal := e.footprint(dims, pageCount)
	signals = append(signals, footprintSignal)

	if clamped := clamp(sqft, MinSqft, MaxSqft); clamped != sqft {
		signals = append(signals, model.Signal{
			Type:        model.SignalClamped,
			Description: fmt.Sprintf("Area %.0f sqft clamped to %.0f sqft", sqft, clamped),
			Data: map[string]interface{}{
				"raw_sqft": sqft,
				"min":      MinSqft,
				"max":      MaxSqft,
			},
		})
		sqft = clamped
	}

	// Footprint treated as square
	side := math.Sqrt(sqft)
	perimeter := side * 4

	stories, storySignal := detectStories(lower)
	if storySignal != nil {
		signals = append(signals, *storySignal)
	}
	wallHeight := float64(StoryHeightFt * stories)

	doors := len(doorPattern.FindAllStringIndex(lower, -1))
	windows := len(windowPattern.FindAllStringIndex(lower, -1))
	if doors < MinDoors || windows < MinWindows {
		signals = append(signals, model.Signal{
			Type:        model.SignalMinOpenings,
			Description: "Opening counts raised to residential minimums",
			Data: map[string]interface{}{
				"doors_found":   doors,
				"windows_found": windows,
				"min_doors":     MinDoors,
				"min_windows":   MinWindows,
			},
		})
	}

	foundation, foundationSignal := detectFoundation(lower)
	if foundationSignal != nil {
		signals = append(signals, *foundationSignal)
	}

	return model.BlueprintEstimate{
		PageCount:      pageCount,
		TotalSqft:      ceil(sqft),
		WallLinearFt:   ceil(perimeter * float64(stories)),
		CeilingSqft:    ceil(sqft),
		FloorSqft:      ceil(sqft),
		ExteriorSqft:   ceil(perimeter * wallHeight),
		RoofSqft:       ceil(sqft * RoofPitchFactor),
		Perimeter:      ceil(perimeter),
		NumDoors:       maxInt(doors, MinDoors),
		NumWindows:     maxInt(windows, MinWindows),
		NumStories:     stories,
		FoundationType: foundation,
		Signals:        signals,
	}
}

// footprint multiplies the two largest plausible dimensions, or falls back
// to the page count when fewer than two are available.
func (e *Estimator) footprint(dims []model.ParsedDimension, pageCount int) (float64, model.Signal) {
	var plausible []float64
	for _, d := range dims {
		if d.Value >= MinPlausibleFt && d.Value <= MaxPlausibleFt {
			plausible = append(plausible, d.Value)
		}
	}

	if len(plausible) >= 2 {
		sort.Sort(sort.Reverse(sort.Float64Slice(plausible)))
		sqft := plausible[0] * plausible[1]
		return sqft, model.Signal{
			Type:        model.SignalFootprint,
			Description: fmt.Sprintf("Footprint %.1f' x %.1f'", plausible[0], plausible[1]),
			Data: map[string]interface{}{
				"length":    plausible[0],
				"width":     plausible[1],
				"plausible": len(plausible),
				"sqft":      sqft,
				"formula":   "largest * second_largest",
			},
		}
	}

	sqft := float64(pageCount) * SqftPerPage
	return sqft, model.Signal{
		Type:        model.SignalPageCount,
		Description: fmt.Sprintf("Only %d plausible dimensions; estimated from %d pages", len(plausible), pageCount),
		Data: map[string]interface{}{
			"pages":     pageCount,
			"plausible": len(plausible),
			"sqft":      sqft,
			"formula":   "page_count * 250",
		},
	}
}

// detectStories applies the story rules in order; a later rule overrides an
// earlier one, so a document naming both a second and third floor ends at 3.
func detectStories(lower string) (int, *model.Signal) {
	stories := 1
	phrase := ""

	for _, p := range []string{"second floor", "2nd floor", "upper level"} {
		if strings.Contains(lower, p) {
			stories = 2
			phrase = p
			break
		}
	}
	for _, p := range []string{"third floor", "3rd floor"} {
		if strings.Contains(lower, p) {
			stories = 3
			phrase = p
			break
		}
	}

	if phrase == "" {
		return stories, nil
	}
	return stories, &model.Signal{
		Type:        model.SignalStories,
		Description: fmt.Sprintf("%d stories (found %q)", stories, phrase),
		Data:        map[string]interface{}{"stories": stories, "phrase": phrase},
	}
}

// detectFoundation checks crawl, basement, then pier/post; first hit wins
func detectFoundation(lower string) (model.FoundationType, *model.Signal) {
	rules := []struct {
		keywords   []string
		foundation model.FoundationType
	}{
		{[]string{"crawl"}, model.FoundationCrawlspace},
		{[]string{"basement"}, model.FoundationBasement},
		{[]string{"pier", "post"}, model.FoundationPierAndBeam},
	}

	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.foundation, &model.Signal{
					Type:        model.SignalFoundation,
					Description: fmt.Sprintf("Foundation %s (found %q)", rule.foundation, kw),
					Data:        map[string]interface{}{"keyword": kw},
				}
			}
		}
	}
	return model.FoundationSlab, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
