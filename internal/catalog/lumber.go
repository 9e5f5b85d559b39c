package catalog

var lumberSizes = []LumberSize{
	{Nominal: "2x4", Actual: "1.5x3.5", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16, 20}},
	{Nominal: "2x6", Actual: "1.5x5.5", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16, 20}},
	{Nominal: "2x8", Actual: "1.5x7.25", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16, 20}},
	{Nominal: "2x10", Actual: "1.5x9.25", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16, 20}},
	{Nominal: "2x12", Actual: "1.5x11.25", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16, 20}},
	{Nominal: "4x4", Actual: "3.5x3.5", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16}},
	{Nominal: "4x6", Actual: "3.5x5.5", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16}},
	{Nominal: "6x6", Actual: "5.5x5.5", Group: "dimensional", LengthsFt: []int{8, 10, 12, 14, 16, 20}},
	{Nominal: "1x4", Actual: "0.75x3.5", Group: "boards", LengthsFt: []int{8, 10, 12, 14, 16}},
	{Nominal: "1x6", Actual: "0.75x5.5", Group: "boards", LengthsFt: []int{8, 10, 12, 14, 16}},
	{Nominal: "1x8", Actual: "0.75x7.25", Group: "boards", LengthsFt: []int{8, 10, 12, 14, 16}},
	{Nominal: "1x10", Actual: "0.75x9.25", Group: "boards", LengthsFt: []int{8, 10, 12, 14, 16}},
	{Nominal: "1x12", Actual: "0.75x11.25", Group: "boards", LengthsFt: []int{8, 10, 12, 14, 16}},
}

var sheathing = []SheathingPanel{
	{Type: "plywood", Thickness: "1/2\"", Size: "4x8", SqFt: 32},
	{Type: "plywood", Thickness: "5/8\"", Size: "4x8", SqFt: 32},
	{Type: "plywood", Thickness: "3/4\"", Size: "4x8", SqFt: 32},
	{Type: "OSB", Thickness: "7/16\"", Size: "4x8", SqFt: 32},
	{Type: "OSB", Thickness: "1/2\"", Size: "4x8", SqFt: 32},
	{Type: "OSB", Thickness: "5/8\"", Size: "4x8", SqFt: 32},
}

var fasteners = []Fastener{
	{Kind: "nails", Name: "16d Common Nails", Length: "3.5\"", Use: "Framing, structural connections", Unit: "lb"},
	{Kind: "nails", Name: "16d Sinker Nails", Length: "3.25\"", Use: "General framing", Unit: "lb"},
	{Kind: "nails", Name: "10d Common Nails", Length: "3\"", Use: "Sheathing, blocking", Unit: "lb"},
	{Kind: "nails", Name: "8d Common Nails", Length: "2.5\"", Use: "Sheathing, subfloor", Unit: "lb"},
	{Kind: "nails", Name: "8d Box Nails", Length: "2.5\"", Use: "Light framing", Unit: "lb"},
	{Kind: "nails", Name: "Roofing Nails 1.25\"", Length: "1.25\"", Use: "Roofing shingles", Unit: "lb"},
	{Kind: "nails", Name: "Roofing Nails 1.5\"", Length: "1.5\"", Use: "Roofing felt, shingles", Unit: "lb"},
	{Kind: "screws", Name: "#8 x 2\" Wood Screws", Length: "2\"", Use: "Light duty connections", Unit: "box"},
	{Kind: "screws", Name: "#8 x 3\" Wood Screws", Length: "3\"", Use: "Deck boards, framing", Unit: "box"},
	{Kind: "screws", Name: "#10 x 3\" Structural Screws", Length: "3\"", Use: "Structural connections", Unit: "box"},
	{Kind: "screws", Name: "#10 x 4\" Structural Screws", Length: "4\"", Use: "Heavy structural", Unit: "box"},
	{Kind: "screws", Name: "GRK RSS 5/16 x 3\"", Length: "3\"", Use: "Structural, replaces lag bolts", Unit: "box"},
	{Kind: "bolts", Name: "1/2\" x 6\" Carriage Bolt", Length: "6\"", Use: "Post connections", Unit: "each"},
	{Kind: "bolts", Name: "1/2\" x 8\" Carriage Bolt", Length: "8\"", Use: "Beam connections", Unit: "each"},
	{Kind: "bolts", Name: "5/8\" x 6\" Hex Bolt", Length: "6\"", Use: "Heavy structural", Unit: "each"},
	{Kind: "bolts", Name: "1/2\" x 10\" Anchor Bolt", Length: "10\"", Use: "Sill plate to foundation", Unit: "each"},
	{Kind: "bolts", Name: "5/8\" x 10\" J-Bolt", Length: "10\"", Use: "Foundation anchor", Unit: "each"},
}

var concreteAnchors = []Anchor{
	{Name: "Wedge Anchor 1/2\" x 4\"", Type: "wedge", Diameter: "1/2\"", Length: "4\"", Use: "Concrete, sill plates"},
	{Name: "Wedge Anchor 1/2\" x 5.5\"", Type: "wedge", Diameter: "1/2\"", Length: "5.5\"", Use: "Concrete, ledger boards"},
	{Name: "Wedge Anchor 5/8\" x 6\"", Type: "wedge", Diameter: "5/8\"", Length: "6\"", Use: "Heavy duty concrete"},
	{Name: "Sleeve Anchor 3/8\" x 3\"", Type: "sleeve", Diameter: "3/8\"", Length: "3\"", Use: "Block, brick"},
	{Name: "Sleeve Anchor 1/2\" x 4\"", Type: "sleeve", Diameter: "1/2\"", Length: "4\"", Use: "Block, brick"},
	{Name: "Tapcon 3/16\" x 1.75\"", Type: "tapcon", Diameter: "3/16\"", Length: "1.75\"", Use: "Light duty concrete/block"},
	{Name: "Tapcon 1/4\" x 2.75\"", Type: "tapcon", Diameter: "1/4\"", Length: "2.75\"", Use: "Medium duty concrete/block"},
	{Name: "Tapcon 1/4\" x 4\"", Type: "tapcon", Diameter: "1/4\"", Length: "4\"", Use: "Heavy duty concrete/block"},
	{Name: "Drop-In Anchor 3/8\"", Type: "drop-in", Diameter: "3/8\"", Use: "Overhead concrete"},
	{Name: "Drop-In Anchor 1/2\"", Type: "drop-in", Diameter: "1/2\"", Use: "Overhead concrete"},
}
