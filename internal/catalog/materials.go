package catalog

import "github.com/ppiankov/planreader/internal/model"

var masonry = []MaterialGroup{
	{
		Name:     "cmu_blocks",
		Division: model.DivisionMasonry,
		Items: []Material{
			{Name: "8x8x16 Standard CMU", Size: "8x8x16", Coverage: 1.125, Unit: "block"},
			{Name: "8x8x16 Lightweight CMU", Size: "8x8x16", Coverage: 1.125, Unit: "block"},
			{Name: "8x8x16 Split-Face CMU", Size: "8x8x16", Coverage: 1.125, Unit: "block"},
			{Name: "4x8x16 Half CMU", Size: "4x8x16", Coverage: 1.125, Unit: "block"},
			{Name: "12x8x16 CMU", Size: "12x8x16", Coverage: 1.125, Unit: "block"},
		},
	},
	{
		Name:     "mortar",
		Division: model.DivisionMasonry,
		Items: []Material{
			{Name: "Type S Mortar Mix", CoverageText: "36 blocks per bag", Unit: "80lb bag"},
			{Name: "Type N Mortar Mix", CoverageText: "36 blocks per bag", Unit: "80lb bag"},
			{Name: "Portland Cement", Use: "Mix with sand", Unit: "94lb bag"},
			{Name: "Masonry Sand", Use: "Mortar mix", Unit: "cubic yard"},
		},
	},
	{
		Name:     "reinforcement",
		Division: model.DivisionMasonry,
		Items: []Material{
			{Name: "#4 Rebar (1/2\")", Use: "Vertical cells, bond beams", Unit: "20ft stick"},
			{Name: "#5 Rebar (5/8\")", Use: "Bond beams, lintels", Unit: "20ft stick"},
			{Name: "Ladder Wire Reinforcement", Use: "Horizontal bed joints", Unit: "10ft stick"},
			{Name: "Truss Wire Reinforcement", Use: "Horizontal bed joints", Unit: "10ft stick"},
		},
	},
	{
		Name:     "accessories",
		Division: model.DivisionMasonry,
		Items: []Material{
			{Name: "Wall Ties", Use: "Veneer to backup", Unit: "box of 100"},
			{Name: "Control Joint Material", Use: "Movement joints", Unit: "10ft length"},
			{Name: "Flashing", Use: "Water management", Unit: "roll"},
		},
	},
}

var thermalMoisture = []MaterialGroup{
	{
		Name:     "insulation",
		Division: model.DivisionThermalMoisture,
		Items: []Material{
			{Name: "R-13 Fiberglass Batt 3.5\"", Thickness: "3.5\"", Use: "2x4 walls", RValue: "13", CoverageText: "40 sqft/bag"},
			{Name: "R-19 Fiberglass Batt 6.25\"", Thickness: "6.25\"", Use: "2x6 walls", RValue: "19", CoverageText: "48 sqft/bag"},
			{Name: "R-30 Fiberglass Batt 10\"", Thickness: "10\"", Use: "Attic floors", RValue: "30", CoverageText: "31 sqft/bag"},
			{Name: "R-38 Fiberglass Batt 12\"", Thickness: "12\"", Use: "Attic", RValue: "38", CoverageText: "24 sqft/bag"},
			{Name: "Rigid Foam XPS 1\"", Thickness: "1\"", Use: "Foundation", RValue: "5", CoverageText: "32 sqft/sheet"},
			{Name: "Rigid Foam XPS 2\"", Thickness: "2\"", Use: "Foundation, exterior", RValue: "10", CoverageText: "32 sqft/sheet"},
			{Name: "Spray Foam Open Cell", Use: "Walls, attic", RValue: "3.7/inch", Unit: "board foot"},
			{Name: "Spray Foam Closed Cell", Use: "Foundation, roof", RValue: "6.5/inch", Unit: "board foot"},
		},
	},
	{
		Name:     "housewrap",
		Division: model.DivisionThermalMoisture,
		Items: []Material{
			{Name: "Tyvek HomeWrap", CoverageText: "150 sqft/roll", Unit: "roll"},
			{Name: "Tyvek CommercialWrap", CoverageText: "150 sqft/roll", Unit: "roll"},
			{Name: "ZIP System Tape", Use: "Seam sealing", Unit: "roll"},
		},
	},
	{
		Name:     "roofing",
		Division: model.DivisionThermalMoisture,
		Items: []Material{
			{Name: "Asphalt Shingles 3-Tab", CoverageText: "33 sqft/bundle", Unit: "bundle"},
			{Name: "Architectural Shingles", CoverageText: "33 sqft/bundle", Unit: "bundle"},
			{Name: "Roofing Felt #15", CoverageText: "400 sqft/roll", Unit: "roll"},
			{Name: "Roofing Felt #30", CoverageText: "200 sqft/roll", Unit: "roll"},
			{Name: "Ice & Water Shield", CoverageText: "67 sqft/roll", Unit: "roll"},
			{Name: "Drip Edge Metal", Length: "10ft", LengthFt: 10, Unit: "piece"},
			{Name: "Ridge Vent", Length: "4ft", LengthFt: 4, Unit: "piece"},
		},
	},
	{
		Name:     "siding",
		Division: model.DivisionThermalMoisture,
		Items: []Material{
			{Name: "Vinyl Siding", CoverageText: "100 sqft/carton", Unit: "carton"},
			{Name: "Fiber Cement Siding (Hardie)", CoverageText: "varies", Unit: "piece"},
			{Name: "LP SmartSide Siding", CoverageText: "varies", Unit: "piece"},
		},
	},
	{
		Name:     "stucco",
		Division: model.DivisionThermalMoisture,
		Items: []Material{
			{Name: "Stucco Base Coat (Scratch/Brown) 80lb", Coverage: 22, Unit: "80lb bag", Note: "Verified Field Standard"},
			{Name: "Stucco Finish Coat 80lb", Coverage: 30, Unit: "80lb bag"},
			{Name: "Metal Lath 2.5lb Diamond", Size: "27\"x96\"", Coverage: 2.78, Unit: "sheet"},
			{Name: "Stucco Wire 17ga Self-Furring", Coverage: 2.78, Unit: "sheet"},
			{Name: "Weep Screed 10ft", Length: "10ft", LengthFt: 10, Unit: "piece"},
			{Name: "Corner Aid 10ft", Length: "10ft", LengthFt: 10, Unit: "piece"},
			{Name: "Casing Bead 10ft", Length: "10ft", LengthFt: 10, Unit: "piece"},
		},
	},
}

var openings = []MaterialGroup{
	{
		Name:     "doors",
		Division: model.DivisionOpenings,
		Items: []Material{
			{Name: "Prehung Interior Door 2/0 x 6/8", Size: "24\"x80\"", Type: "interior", Unit: "each"},
			{Name: "Prehung Interior Door 2/6 x 6/8", Size: "30\"x80\"", Type: "interior", Unit: "each"},
			{Name: "Prehung Interior Door 2/8 x 6/8", Size: "32\"x80\"", Type: "interior", Unit: "each"},
			{Name: "Prehung Interior Door 3/0 x 6/8", Size: "36\"x80\"", Type: "interior", Unit: "each"},
			{Name: "Prehung Exterior Door 3/0 x 6/8", Size: "36\"x80\"", Type: "exterior", Unit: "each"},
			{Name: "Sliding Glass Door 6/0 x 6/8", Size: "72\"x80\"", Type: "exterior", Unit: "each"},
			{Name: "Garage Door 16x7", Size: "16'x7'", Type: "garage", Unit: "each"},
			{Name: "Garage Door 9x7", Size: "9'x7'", Type: "garage", Unit: "each"},
		},
	},
	{
		Name:     "windows",
		Division: model.DivisionOpenings,
		Items: []Material{
			{Name: "Single Hung Window 2/0 x 3/0", Size: "24\"x36\"", Type: "single hung", Unit: "each"},
			{Name: "Single Hung Window 3/0 x 4/0", Size: "36\"x48\"", Type: "single hung", Unit: "each"},
			{Name: "Single Hung Window 3/0 x 5/0", Size: "36\"x60\"", Type: "single hung", Unit: "each"},
			{Name: "Double Hung Window 3/0 x 4/0", Size: "36\"x48\"", Type: "double hung", Unit: "each"},
			{Name: "Casement Window 2/0 x 3/0", Size: "24\"x36\"", Type: "casement", Unit: "each"},
			{Name: "Picture Window 4/0 x 5/0", Size: "48\"x60\"", Type: "fixed", Unit: "each"},
		},
	},
	{
		Name:     "hardware",
		Division: model.DivisionOpenings,
		Items: []Material{
			{Name: "Interior Door Knob Set", Type: "passage", Unit: "set"},
			{Name: "Privacy Door Knob Set", Type: "privacy", Unit: "set"},
			{Name: "Entry Door Handleset", Type: "entry", Unit: "set"},
			{Name: "Deadbolt Lock", Type: "security", Unit: "each"},
			{Name: "Door Hinges 3.5\"", Type: "hinge", Unit: "pair"},
			{Name: "Door Stop", Type: "stop", Unit: "each"},
		},
	},
}

var finishes = []MaterialGroup{
	{
		Name:     "drywall",
		Division: model.DivisionFinishes,
		Items: []Material{
			{Name: "Drywall 1/2\" 4x8", Size: "4x8", Thickness: "1/2\"", Coverage: 32, Unit: "sheet"},
			{Name: "Drywall 1/2\" 4x10", Size: "4x10", Thickness: "1/2\"", Coverage: 40, Unit: "sheet"},
			{Name: "Drywall 1/2\" 4x12", Size: "4x12", Thickness: "1/2\"", Coverage: 48, Unit: "sheet"},
			{Name: "Drywall 5/8\" 4x8 (Fire-Rated)", Size: "4x8", Thickness: "5/8\"", Coverage: 32, Unit: "sheet"},
			{Name: "Moisture Resistant Drywall 1/2\"", Size: "4x8", Thickness: "1/2\"", Coverage: 32, Unit: "sheet"},
			{Name: "Cement Board 1/2\" 3x5", Size: "3x5", Thickness: "1/2\"", Coverage: 15, Unit: "sheet"},
		},
	},
	{
		Name:     "drywall_accessories",
		Division: model.DivisionFinishes,
		Items: []Material{
			{Name: "Joint Compound 50lb Box", CoverageText: "1000 sqft/box", LbsPerSqFt: 0.05, Unit: "50lb box"},
			{Name: "Paper Drywall Tape", Length: "500ft", LengthFt: 500, Unit: "roll"},
			{Name: "Mesh Drywall Tape", Length: "300ft", LengthFt: 300, Unit: "roll"},
			{Name: "Corner Bead Metal", Length: "8ft", LengthFt: 8, Unit: "piece"},
			{Name: "Corner Bead Vinyl", Length: "10ft", LengthFt: 10, Unit: "piece"},
			{Name: "Drywall Screws 1.25\"", Unit: "lb"},
			{Name: "Drywall Screws 1.625\"", Unit: "lb"},
		},
	},
	{
		Name:     "paint",
		Division: model.DivisionFinishes,
		Items: []Material{
			{Name: "Interior Primer", Coverage: 200, Coats: 1, Unit: "gallon"},
			{Name: "Interior Latex Paint (Flat)", Coverage: 200, Coats: 2, Unit: "gallon"},
			{Name: "Interior Latex Paint (Eggshell)", Coverage: 200, Coats: 2, Unit: "gallon"},
			{Name: "Interior Latex Paint (Satin)", Coverage: 200, Coats: 2, Unit: "gallon"},
			{Name: "Interior Latex Paint (Semi-Gloss)", Coverage: 200, Coats: 2, Unit: "gallon"},
			{Name: "Exterior Primer", Coverage: 200, Coats: 1, Unit: "gallon"},
			{Name: "Exterior Latex Paint", Coverage: 200, Coats: 2, Unit: "gallon"},
		},
	},
	{
		Name:     "flooring",
		Division: model.DivisionFinishes,
		Items: []Material{
			{Name: "Underlayment Plywood 1/4\"", Size: "4x8", Coverage: 32, Unit: "sheet"},
			{Name: "LVP Flooring", CoverageText: "varies", Unit: "sqft"},
			{Name: "Carpet", CoverageText: "varies", Unit: "sqyd"},
			{Name: "Carpet Pad", CoverageText: "varies", Unit: "sqyd"},
			{Name: "Tile Backer Board", Size: "3x5", Coverage: 15, Unit: "sheet"},
		},
	},
}
