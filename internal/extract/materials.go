package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/planreader/internal/model"
)

// contextChars is the window kept on each side of a keyword hit
const contextChars = 50

type divisionKeywords struct {
	division model.DivisionCode
	keywords []string
}

// divisionVocabulary is scanned in this order; keyword order within a
// division is preserved in the output.
var divisionVocabulary = []divisionKeywords{
	{model.DivisionConcrete, []string{"concrete", "footing", "slab", "foundation", "rebar", "reinforcing", "pour"}},
	{model.DivisionMasonry, []string{"cmu", "block", "masonry", "brick", "mortar", "grout", "stone"}},
	{model.DivisionWood, []string{"lumber", "wood", "framing", "stud", "joist", "rafter", "truss", "beam",
		"header", "plate", "sheathing", "plywood", "osb", "lvl", "glulam",
		"2x4", "2x6", "2x8", "2x10", "2x12", "4x4", "6x6"}},
	{model.DivisionThermalMoisture, []string{"roofing", "shingle", "insulation", "vapor barrier", "housewrap",
		"waterproof", "flashing", "gutter", "soffit", "fascia", "siding"}},
	{model.DivisionOpenings, []string{"door", "window", "opening", "frame", "hardware", "glazing", "garage"}},
	{model.DivisionFinishes, []string{"drywall", "gypsum", "paint", "finish", "tile", "flooring", "carpet",
		"ceiling", "trim", "baseboard", "crown"}},
}

var lumberSizePattern = regexp.MustCompile(`(?i)(2x4|2x6|2x8|2x10|2x12|4x4|4x6|6x6|1x4|1x6|1x8)`)

type keywordMatcher struct {
	keyword  string
	division model.DivisionCode
	quantity *regexp.Regexp
}

// MaterialDetector tags division vocabulary found in page text
type MaterialDetector struct {
	matchers []keywordMatcher
}

// NewMaterialDetector creates a detector over the built-in division vocabulary
func NewMaterialDetector() *MaterialDetector {
	d := &MaterialDetector{}
	for _, dk := range divisionVocabulary {
		for _, kw := range dk.keywords {
			d.matchers = append(d.matchers, keywordMatcher{
				keyword:  kw,
				division: dk.division,
				quantity: regexp.MustCompile(`(\d+)\s*(?:pcs?|pieces?|sheets?|each|ea)?\s*(?:of\s+)?` + regexp.QuoteMeta(kw)),
			})
		}
	}
	return d
}

// Detect returns one hit per keyword present in text, followed by one hit
// per bare lumber-size token.
func (d *MaterialDetector) Detect(text string) []model.DetectedMaterial {
	lower := strings.ToLower(text)
	var found []model.DetectedMaterial

	for _, m := range d.matchers {
		if !strings.Contains(lower, m.keyword) {
			continue
		}

		qty := 0
		if sub := m.quantity.FindStringSubmatch(lower); sub != nil {
			qty = atoiSaturating(sub[1])
		}

		found = append(found, model.DetectedMaterial{
			Keyword:       m.keyword,
			Division:      m.division,
			QuantityFound: qty,
			Context:       keywordContext(lower, m.keyword, contextChars),
		})
	}

	for _, size := range lumberSizePattern.FindAllString(text, -1) {
		found = append(found, model.DetectedMaterial{
			Keyword:       strings.ToLower(size),
			Division:      model.DivisionWood,
			QuantityFound: 0,
			Context:       "Lumber size: " + size,
		})
	}

	return found
}

// keywordContext returns the text around the first occurrence of keyword
func keywordContext(text, keyword string, chars int) string {
	idx := strings.Index(text, keyword)
	if idx == -1 {
		return ""
	}

	start := idx - chars
	if start < 0 {
		start = 0
	}
	end := idx + len(keyword) + chars
	if end > len(text) {
		end = len(text)
	}

	// Keep the window on rune boundaries
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	return strings.ReplaceAll(text[start:end], "\n", " ")
}

// atoiSaturating parses a run of ASCII digits, capping instead of overflowing
func atoiSaturating(s string) int {
	const maxQty = 1<<31 - 1
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > maxQty {
			return maxQty
		}
	}
	return n
}
