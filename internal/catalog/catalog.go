// Package catalog holds the static reference data used for takeoffs:
// MasterFormat divisions, lumber, fasteners, anchors, division material
// tables and Simpson Strong-Tie / MiTek connector catalogs.
//
// All tables are built once at package init and never mutated, so every
// lookup is safe for concurrent use.
package catalog

import (
	"math"
	"slices"
	"strings"

	"github.com/ppiankov/planreader/internal/model"
)

// Division is a MasterFormat division with its subcategories.
type Division struct {
	Code          string
	Name          string
	Description   string
	Subcategories []Subcategory
}

// Subcategory is a MasterFormat section such as "06 11 00".
type Subcategory struct {
	Code string
	Name string
}

// LumberSize is a nominal dimensional lumber or board size.
type LumberSize struct {
	Nominal   string
	Actual    string
	Group     string
	LengthsFt []int
}

// SheathingPanel is a structural sheathing panel.
type SheathingPanel struct {
	Type      string
	Thickness string
	Size      string
	SqFt      float64
}

// Fastener is a nail, screw or bolt sold by the given unit.
type Fastener struct {
	Kind   string
	Name   string
	Length string
	Use    string
	Unit   string
}

// Anchor is a concrete anchor.
type Anchor struct {
	Name     string
	Type     string
	Diameter string
	Length   string
	Use      string
}

// Material is a row in one of the division material tables. Coverage is
// square feet per unit unless the row is sold by length, in which case
// LengthFt is the piece length.
type Material struct {
	Name         string
	Size         string
	Thickness    string
	Type         string
	Use          string
	RValue       string
	Coverage     float64
	CoverageText string
	LbsPerSqFt   float64
	Length       string
	LengthFt     float64
	Coats        int
	Unit         string
	Note         string
}

// MaterialGroup is a named group of materials within a division.
type MaterialGroup struct {
	Name     string
	Division model.DivisionCode
	Items    []Material
}

// Manufacturer identifies a connector catalog.
type Manufacturer string

const (
	Simpson Manufacturer = "Simpson Strong-Tie"
	MiTek   Manufacturer = "MiTek"
)

// Connector is a framing connector or hardware model.
type Connector struct {
	Model        string
	Manufacturer Manufacturer
	Category     string
	Name         string
	Description  string
	Use          string
	Load         string
	Fasteners    string
	Lumber       string
	PostSize     string
	Length       string
	Width        string
	Lengths      []string
	Sizes        []string
	Diameters    []string
	Unit         string
	PackQty      int
}

// Package is a standard connector configuration, e.g. the connectors
// needed per roof truss.
type Package struct {
	Key         string
	Name        string
	Description string
	Items       []PackageItem
}

// PackageItem asks for Quantity of Model for every Every members of kind Per.
type PackageItem struct {
	Model    string
	Quantity int
	Every    int
	Per      string
	Note     string
}

// PackageQuantity is a resolved package line.
type PackageQuantity struct {
	Connector Connector
	Quantity  int
	Note      string
}

var (
	divisionIndex    map[string]int
	subcategoryIndex map[string]Subcategory
	lumberIndex      map[string]int
	simpsonIndex     map[string]int
	mitekIndex       map[string]int
	packageIndex     map[string]int
)

func init() {
	divisionIndex = make(map[string]int, len(divisions))
	subcategoryIndex = make(map[string]Subcategory)
	for i, d := range divisions {
		divisionIndex[d.Code] = i
		for _, sc := range d.Subcategories {
			subcategoryIndex[sc.Code] = sc
		}
	}
	lumberIndex = indexBy(len(lumberSizes), func(i int) string { return lumberSizes[i].Nominal })
	simpsonIndex = indexBy(len(simpsonConnectors), func(i int) string { return simpsonConnectors[i].Model })
	mitekIndex = indexBy(len(mitekProducts), func(i int) string { return mitekProducts[i].Model })
	packageIndex = indexBy(len(packages), func(i int) string { return packages[i].Key })
}

func indexBy(n int, key func(int) string) map[string]int {
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		k := normalizeKey(key(i))
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}

func normalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Divisions returns all divisions in code order.
func Divisions() []Division {
	out := make([]Division, len(divisions))
	for i, d := range divisions {
		out[i] = d.clone()
	}
	return out
}

// DivisionByCode returns the division for a two-digit code such as "06".
func DivisionByCode(code string) (Division, bool) {
	i, ok := divisionIndex[strings.TrimSpace(code)]
	if !ok {
		return Division{}, false
	}
	return divisions[i].clone(), true
}

// SubcategoryByCode returns a subcategory by its full section code.
func SubcategoryByCode(code string) (Subcategory, bool) {
	sc, ok := subcategoryIndex[strings.TrimSpace(code)]
	return sc, ok
}

// LumberSizes returns dimensional lumber and boards.
func LumberSizes() []LumberSize {
	out := make([]LumberSize, len(lumberSizes))
	for i, l := range lumberSizes {
		out[i] = l.clone()
	}
	return out
}

// LumberByNominal looks up a nominal size such as "2x10".
func LumberByNominal(nominal string) (LumberSize, bool) {
	i, ok := lumberIndex[normalizeKey(nominal)]
	if !ok {
		return LumberSize{}, false
	}
	return lumberSizes[i].clone(), true
}

// Sheathing returns the structural panel table.
func Sheathing() []SheathingPanel {
	return append([]SheathingPanel(nil), sheathing...)
}

// Fasteners returns nails, screws and bolts. An empty kind returns all.
func Fasteners(kind string) []Fastener {
	var out []Fastener
	for _, f := range fasteners {
		if kind == "" || strings.EqualFold(f.Kind, kind) {
			out = append(out, f)
		}
	}
	return out
}

// ConcreteAnchors returns the concrete anchor table.
func ConcreteAnchors() []Anchor {
	return append([]Anchor(nil), concreteAnchors...)
}

// MaterialGroups returns the material tables for a division. Divisions
// without a material table (03, 06) return nil.
func MaterialGroups(code model.DivisionCode) []MaterialGroup {
	var src []MaterialGroup
	switch code {
	case model.DivisionMasonry:
		src = masonry
	case model.DivisionThermalMoisture:
		src = thermalMoisture
	case model.DivisionOpenings:
		src = openings
	case model.DivisionFinishes:
		src = finishes
	default:
		return nil
	}
	out := make([]MaterialGroup, len(src))
	for i, g := range src {
		g.Items = slices.Clone(g.Items)
		out[i] = g
	}
	return out
}

// SimpsonConnectors returns the Simpson catalog, optionally filtered by category.
func SimpsonConnectors(category string) []Connector {
	return filterConnectors(simpsonConnectors, category)
}

// MiTekProducts returns the MiTek catalog, optionally filtered by category.
func MiTekProducts(category string) []Connector {
	return filterConnectors(mitekProducts, category)
}

func filterConnectors(src []Connector, category string) []Connector {
	var out []Connector
	for _, c := range src {
		if category == "" || c.Category == category {
			out = append(out, c.clone())
		}
	}
	return out
}

// SimpsonByModel looks up a Simpson model, case-insensitively.
func SimpsonByModel(m string) (Connector, bool) {
	i, ok := simpsonIndex[normalizeKey(m)]
	if !ok {
		return Connector{}, false
	}
	return simpsonConnectors[i].clone(), true
}

// MiTekByModel looks up a MiTek model, case-insensitively.
func MiTekByModel(m string) (Connector, bool) {
	i, ok := mitekIndex[normalizeKey(m)]
	if !ok {
		return Connector{}, false
	}
	return mitekProducts[i].clone(), true
}

// ConnectorByModel tries Simpson first, then MiTek.
func ConnectorByModel(m string) (Connector, bool) {
	if c, ok := SimpsonByModel(m); ok {
		return c, true
	}
	return MiTekByModel(m)
}

// Packages returns all connector configuration packages.
func Packages() []Package {
	out := make([]Package, len(packages))
	for i, p := range packages {
		out[i] = p.clone()
	}
	return out
}

// PackageByKey looks up a package such as "roof_truss_package".
func PackageByKey(key string) (Package, bool) {
	i, ok := packageIndex[normalizeKey(key)]
	if !ok {
		return Package{}, false
	}
	return packages[i].clone(), true
}

// Quantities resolves the package against member counts keyed by the
// items' Per value ("truss", "joist", ...). Each line is
// ceil(count/Every) * Quantity. Items whose count is missing or not
// positive are skipped.
func (p Package) Quantities(counts map[string]int) []PackageQuantity {
	var out []PackageQuantity
	for _, it := range p.Items {
		n := counts[it.Per]
		if n <= 0 {
			continue
		}
		every := it.Every
		if every < 1 {
			every = 1
		}
		c, ok := ConnectorByModel(it.Model)
		if !ok {
			c = Connector{Model: it.Model}
		}
		groups := int(math.Ceil(float64(n) / float64(every)))
		out = append(out, PackageQuantity{Connector: c, Quantity: groups * it.Quantity, Note: it.Note})
	}
	return out
}

// StuccoBaseCoat is the scratch/brown coat row, 22 sqft per 80 lb bag.
func StuccoBaseCoat() Material {
	return mustMaterial(thermalMoisture, "stucco", "Stucco Base Coat")
}

// StuccoFinishCoat is the finish coat row, 30 sqft per 80 lb bag.
func StuccoFinishCoat() Material {
	return mustMaterial(thermalMoisture, "stucco", "Stucco Finish Coat")
}

// WeepScreed is sold by the piece; LengthFt is the piece length.
func WeepScreed() Material {
	return mustMaterial(thermalMoisture, "stucco", "Weep Screed")
}

// JointCompound is the 50 lb box row with its lbs-per-sqft rate.
func JointCompound() Material {
	return mustMaterial(finishes, "drywall_accessories", "Joint Compound")
}

// DrywallSheet is the standard 1/2" 4x8 sheet.
func DrywallSheet() Material {
	return mustMaterial(finishes, "drywall", "Drywall 1/2\" 4x8")
}

// PaintCoverage is the field-standard interior paint coverage in sqft per gallon.
func PaintCoverage() float64 {
	return mustMaterial(finishes, "paint", "Interior Latex Paint (Flat)").Coverage
}

// clone copies the nested slices so callers never share table storage.
func (d Division) clone() Division {
	d.Subcategories = slices.Clone(d.Subcategories)
	return d
}

func (l LumberSize) clone() LumberSize {
	l.LengthsFt = slices.Clone(l.LengthsFt)
	return l
}

func (c Connector) clone() Connector {
	c.Lengths = slices.Clone(c.Lengths)
	c.Sizes = slices.Clone(c.Sizes)
	c.Diameters = slices.Clone(c.Diameters)
	return c
}

func (p Package) clone() Package {
	p.Items = slices.Clone(p.Items)
	return p
}

func mustMaterial(groups []MaterialGroup, group, prefix string) Material {
	for _, g := range groups {
		if g.Name != group {
			continue
		}
		for _, m := range g.Items {
			if strings.HasPrefix(m.Name, prefix) {
				return m
			}
		}
	}
	panic("catalog: missing material " + group + "/" + prefix)
}
