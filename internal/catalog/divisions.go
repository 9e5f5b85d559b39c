package catalog

var divisions = []Division{
	{
		Code:        "03",
		Name:        "Concrete",
		Description: "Cast-in-place concrete, precast concrete, cementitious decks",
		Subcategories: []Subcategory{
			{Code: "03 10 00", Name: "Concrete Forming and Accessories"},
			{Code: "03 20 00", Name: "Concrete Reinforcing"},
			{Code: "03 30 00", Name: "Cast-in-Place Concrete"},
			{Code: "03 40 00", Name: "Precast Concrete"},
			{Code: "03 50 00", Name: "Cast Decks and Underlayment"},
		},
	},
	{
		Code:        "04",
		Name:        "Masonry",
		Description: "Unit masonry, stone, masonry restoration",
		Subcategories: []Subcategory{
			{Code: "04 20 00", Name: "Unit Masonry"},
			{Code: "04 21 00", Name: "Clay Unit Masonry"},
			{Code: "04 22 00", Name: "Concrete Unit Masonry"},
			{Code: "04 40 00", Name: "Stone Assemblies"},
			{Code: "04 70 00", Name: "Manufactured Masonry"},
		},
	},
	{
		Code:        "06",
		Name:        "Wood, Plastics, and Composites",
		Description: "Rough carpentry, finish carpentry, architectural woodwork",
		Subcategories: []Subcategory{
			{Code: "06 10 00", Name: "Rough Carpentry"},
			{Code: "06 11 00", Name: "Wood Framing"},
			{Code: "06 12 00", Name: "Structural Panels"},
			{Code: "06 15 00", Name: "Wood Decking"},
			{Code: "06 17 00", Name: "Shop-Fabricated Structural Wood"},
			{Code: "06 20 00", Name: "Finish Carpentry"},
			{Code: "06 40 00", Name: "Architectural Woodwork"},
		},
	},
	{
		Code:        "07",
		Name:        "Thermal and Moisture Protection",
		Description: "Waterproofing, insulation, roofing, siding",
		Subcategories: []Subcategory{
			{Code: "07 10 00", Name: "Dampproofing and Waterproofing"},
			{Code: "07 20 00", Name: "Thermal Protection"},
			{Code: "07 21 00", Name: "Thermal Insulation"},
			{Code: "07 30 00", Name: "Steep Slope Roofing"},
			{Code: "07 40 00", Name: "Roofing and Siding Panels"},
			{Code: "07 46 00", Name: "Siding"},
			{Code: "07 50 00", Name: "Membrane Roofing"},
			{Code: "07 60 00", Name: "Flashing and Sheet Metal"},
			{Code: "07 90 00", Name: "Joint Protection"},
		},
	},
	{
		Code:        "08",
		Name:        "Openings",
		Description: "Doors, windows, entrances, storefronts, hardware",
		Subcategories: []Subcategory{
			{Code: "08 10 00", Name: "Doors and Frames"},
			{Code: "08 11 00", Name: "Metal Doors and Frames"},
			{Code: "08 14 00", Name: "Wood Doors"},
			{Code: "08 30 00", Name: "Specialty Doors and Frames"},
			{Code: "08 40 00", Name: "Entrances, Storefronts, and Curtain Walls"},
			{Code: "08 50 00", Name: "Windows"},
			{Code: "08 70 00", Name: "Hardware"},
			{Code: "08 80 00", Name: "Glazing"},
		},
	},
	{
		Code:        "09",
		Name:        "Finishes",
		Description: "Plaster, gypsum board, tile, flooring, painting",
		Subcategories: []Subcategory{
			{Code: "09 20 00", Name: "Plaster and Gypsum Board"},
			{Code: "09 21 00", Name: "Plaster and Gypsum Board Assemblies"},
			{Code: "09 22 00", Name: "Supports for Plaster and Gypsum Board"},
			{Code: "09 29 00", Name: "Gypsum Board"},
			{Code: "09 30 00", Name: "Tiling"},
			{Code: "09 50 00", Name: "Ceilings"},
			{Code: "09 60 00", Name: "Flooring"},
			{Code: "09 65 00", Name: "Resilient Flooring"},
			{Code: "09 68 00", Name: "Carpeting"},
			{Code: "09 90 00", Name: "Painting and Coating"},
		},
	},
}
