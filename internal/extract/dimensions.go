package extract

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ppiankov/planreader/internal/model"
)

// Pattern confidences. Feet-and-inches is the least ambiguous notation on a
// drawing, bare inch marks the most.
const (
	confidenceFeetInches = 0.90
	confidenceFeet       = 0.85
	confidenceInches     = 0.80
)

var (
	// 10'-6" or 10' 6"
	feetInchesPattern = regexp.MustCompile(`(\d+)['’′][-\s]?(\d+)["″”]?`)
	// 10 ft, 10.5 feet, 10'
	feetPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:ft|feet|foot|['’′])`)
	// 24 in, 24 inches, 24"
	inchesPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:in|inch|inches|["″”])`)
)

// DimensionExtractor finds measurement tokens in page text
type DimensionExtractor struct{}

// NewDimensionExtractor creates a new dimension extractor
func NewDimensionExtractor() *DimensionExtractor {
	return &DimensionExtractor{}
}

// Extract runs the feet-and-inches, feet and inches passes over text.
// Passes are independent, so one token can yield several dimensions.
func (e *DimensionExtractor) Extract(text string) []model.ParsedDimension {
	var dims []model.ParsedDimension

	for _, m := range feetInchesPattern.FindAllStringSubmatch(text, -1) {
		feet, err1 := strconv.Atoi(m[1])
		inches, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		dims = append(dims, model.ParsedDimension{
			Value:      float64(feet) + float64(inches)/12,
			Unit:       "ft",
			RawText:    fmt.Sprintf("%d'-%d\"", feet, inches),
			Confidence: confidenceFeetInches,
		})
	}

	for _, m := range feetPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		dims = append(dims, model.ParsedDimension{
			Value:      v,
			Unit:       "ft",
			RawText:    m[1] + " ft",
			Confidence: confidenceFeet,
		})
	}

	for _, m := range inchesPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		dims = append(dims, model.ParsedDimension{
			Value:      v / 12,
			Unit:       "ft",
			RawText:    m[1] + " in",
			Confidence: confidenceInches,
		})
	}

	return dims
}
