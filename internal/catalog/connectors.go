package catalog

var simpsonConnectors = []Connector{
	{Model: "H2.5A", Manufacturer: Simpson, Category: "hurricane_ties", Name: "Hurricane Tie", Description: "Single-sided hurricane/seismic tie for trusses and rafters", Use: "Secures roof trusses/rafters to top plate", Load: "505 lb", Fasteners: "10-10d x 1.5\" nails", Unit: "each", PackQty: 100},
	{Model: "H1", Manufacturer: Simpson, Category: "hurricane_ties", Name: "Hurricane Tie", Description: "Light-duty hurricane tie", Use: "Light truss/rafter to top plate", Load: "175 lb", Fasteners: "4-8d x 1.5\" nails", Unit: "each", PackQty: 100},
	{Model: "H10A", Manufacturer: Simpson, Category: "hurricane_ties", Name: "Hurricane Tie", Description: "Heavy-duty hurricane tie", Use: "Heavy truss/rafter to top plate", Load: "1070 lb", Fasteners: "14-10d x 1.5\" nails", Unit: "each", PackQty: 50},
	{Model: "LSTA", Manufacturer: Simpson, Category: "hurricane_ties", Name: "Lateral Stabilizer", Description: "Strap tie for lateral stability", Use: "Truss-to-truss or truss-to-wall", Load: "1545 lb", Fasteners: "varies by length", Lengths: []string{"9\"", "12\"", "15\"", "18\"", "21\"", "24\""}, Unit: "each", PackQty: 50},
	{Model: "LSTI", Manufacturer: Simpson, Category: "hurricane_ties", Name: "Twist Strap", Description: "Light lateral strap with twist", Use: "Truss lateral bracing", Load: "810 lb", Fasteners: "10-8d nails", Unit: "each", PackQty: 100},
	{Model: "LUS26", Manufacturer: Simpson, Category: "joist_hangers", Name: "Face-Mount Joist Hanger 2x6", Description: "Standard face-mount hanger for 2x6", Use: "Joist to beam/header connection", Load: "790 lb", Fasteners: "10-10d x 1.5\" nails", Lumber: "2x6", Unit: "each", PackQty: 25},
	{Model: "LUS28", Manufacturer: Simpson, Category: "joist_hangers", Name: "Face-Mount Joist Hanger 2x8", Description: "Standard face-mount hanger for 2x8", Use: "Joist to beam/header connection", Load: "1015 lb", Fasteners: "10-10d x 1.5\" nails", Lumber: "2x8", Unit: "each", PackQty: 25},
	{Model: "LUS210", Manufacturer: Simpson, Category: "joist_hangers", Name: "Face-Mount Joist Hanger 2x10", Description: "Standard face-mount hanger for 2x10", Use: "Joist to beam/header connection", Load: "1290 lb", Fasteners: "10-10d x 1.5\" nails", Lumber: "2x10", Unit: "each", PackQty: 25},
	{Model: "LUS212", Manufacturer: Simpson, Category: "joist_hangers", Name: "Face-Mount Joist Hanger 2x12", Description: "Standard face-mount hanger for 2x12", Use: "Joist to beam/header connection", Load: "1595 lb", Fasteners: "10-10d x 1.5\" nails", Lumber: "2x12", Unit: "each", PackQty: 25},
	{Model: "LU26", Manufacturer: Simpson, Category: "joist_hangers", Name: "Top-Flange Joist Hanger 2x6", Description: "Top-flange hanger for 2x6", Use: "Joist to I-joist or beam", Load: "520 lb", Fasteners: "6-10d nails", Lumber: "2x6", Unit: "each", PackQty: 25},
	{Model: "HUS26", Manufacturer: Simpson, Category: "joist_hangers", Name: "Heavy-Duty Joist Hanger 2x6", Description: "Heavy joist hanger for 2x6", Use: "Heavy-duty joist connection", Load: "1095 lb", Fasteners: "varies", Lumber: "2x6", Unit: "each", PackQty: 25},
	{Model: "A35", Manufacturer: Simpson, Category: "angle_brackets", Name: "Framing Angle", Description: "All-purpose framing angle", Use: "General framing connections, blocking, corners", Load: "1055 lb", Fasteners: "18-10d x 1.5\" nails", Unit: "each", PackQty: 100},
	{Model: "A34", Manufacturer: Simpson, Category: "angle_brackets", Name: "Framing Angle", Description: "Standard framing angle", Use: "Light framing, nailer plates", Load: "555 lb", Fasteners: "10-10d nails", Unit: "each", PackQty: 100},
	{Model: "A21", Manufacturer: Simpson, Category: "angle_brackets", Name: "Framing Angle", Description: "Light framing angle", Use: "Light-duty connections", Load: "340 lb", Fasteners: "8-8d nails", Unit: "each", PackQty: 100},
	{Model: "L50", Manufacturer: Simpson, Category: "angle_brackets", Name: "Reinforcing Angle", Description: "Reinforcing L-angle", Use: "Beam/post connections", Load: "1760 lb", Fasteners: "14-10d nails", Unit: "each", PackQty: 50},
	{Model: "L70", Manufacturer: Simpson, Category: "angle_brackets", Name: "Reinforcing Angle", Description: "Heavy reinforcing L-angle", Use: "Heavy-duty connections", Load: "2890 lb", Fasteners: "varies", Unit: "each", PackQty: 25},
	{Model: "ABU44", Manufacturer: Simpson, Category: "post_bases", Name: "Adjustable Post Base 4x4", Description: "Adjustable standoff post base", Use: "4x4 post to concrete", Load: "3770 lb", Fasteners: "4-10d nails + anchor", PostSize: "4x4", Unit: "each", PackQty: 10},
	{Model: "ABU66", Manufacturer: Simpson, Category: "post_bases", Name: "Adjustable Post Base 6x6", Description: "Adjustable standoff post base", Use: "6x6 post to concrete", Load: "7615 lb", Fasteners: "varies + anchor", PostSize: "6x6", Unit: "each", PackQty: 10},
	{Model: "CB44", Manufacturer: Simpson, Category: "post_bases", Name: "Column Base 4x4", Description: "Concealed post base", Use: "4x4 post to concrete (concealed)", Load: "2250 lb", Fasteners: "varies", PostSize: "4x4", Unit: "each", PackQty: 10},
	{Model: "PB44", Manufacturer: Simpson, Category: "post_bases", Name: "Post Base 4x4", Description: "Standard post base", Use: "4x4 post to concrete", Load: "1795 lb", Fasteners: "4-16d nails", PostSize: "4x4", Unit: "each", PackQty: 25},
	{Model: "BC4", Manufacturer: Simpson, Category: "post_caps", Name: "Post Cap 4x4", Description: "Post to beam cap", Use: "4x4 post to beam", Load: "4560 lb", Fasteners: "8-16d nails", PostSize: "4x4", Unit: "each", PackQty: 25},
	{Model: "BC6", Manufacturer: Simpson, Category: "post_caps", Name: "Post Cap 6x6", Description: "Post to beam cap", Use: "6x6 post to beam", Load: "7300 lb", Fasteners: "8-16d nails", PostSize: "6x6", Unit: "each", PackQty: 10},
	{Model: "AC4", Manufacturer: Simpson, Category: "post_caps", Name: "Adjustable Post Cap 4x4", Description: "Adjustable post cap", Use: "4x4 post to beam (adjustable)", Load: "3905 lb", Fasteners: "8-16d nails", PostSize: "4x4", Unit: "each", PackQty: 25},
	{Model: "HDU2", Manufacturer: Simpson, Category: "hold_downs", Name: "Holdown", Description: "Pre-deflected holdown", Use: "Shear wall holdown", Load: "3075 lb", Fasteners: "SDS screws", Unit: "each", PackQty: 10},
	{Model: "HDU4", Manufacturer: Simpson, Category: "hold_downs", Name: "Holdown", Description: "Pre-deflected holdown", Use: "Heavy-duty shear wall", Load: "4565 lb", Fasteners: "SDS screws", Unit: "each", PackQty: 10},
	{Model: "HDU8", Manufacturer: Simpson, Category: "hold_downs", Name: "Holdown", Description: "Heavy pre-deflected holdown", Use: "Heavy shear wall", Load: "6525 lb", Fasteners: "SDS screws", Unit: "each", PackQty: 5},
	{Model: "PHD2", Manufacturer: Simpson, Category: "hold_downs", Name: "Purlin Hanger/Holdown", Description: "Multi-purpose holdown", Use: "Purlin or holdown", Load: "2895 lb", Fasteners: "8-16d nails", Unit: "each", PackQty: 25},
	{Model: "LSTA12", Manufacturer: Simpson, Category: "straps", Name: "Strap Tie 12\"", Description: "12\" strap tie", Use: "Truss bracing, general strapping", Load: "1545 lb", Fasteners: "10-10d nails", Length: "12\"", Unit: "each", PackQty: 100},
	{Model: "LSTA18", Manufacturer: Simpson, Category: "straps", Name: "Strap Tie 18\"", Description: "18\" strap tie", Use: "Truss bracing, general strapping", Load: "1545 lb", Fasteners: "16-10d nails", Length: "18\"", Unit: "each", PackQty: 100},
	{Model: "LSTA24", Manufacturer: Simpson, Category: "straps", Name: "Strap Tie 24\"", Description: "24\" strap tie", Use: "Truss bracing, general strapping", Load: "1545 lb", Fasteners: "20-10d nails", Length: "24\"", Unit: "each", PackQty: 50},
	{Model: "MST27", Manufacturer: Simpson, Category: "straps", Name: "Medium Strap Tie 27\"", Description: "27\" medium strap", Use: "Wall plate splices", Load: "820 lb", Fasteners: "10-8d nails", Length: "27\"", Unit: "each", PackQty: 100},
	{Model: "MST37", Manufacturer: Simpson, Category: "straps", Name: "Medium Strap Tie 37\"", Description: "37\" medium strap", Use: "Wall plate splices, rafters", Load: "820 lb", Fasteners: "14-8d nails", Length: "37\"", Unit: "each", PackQty: 100},
	{Model: "ST22", Manufacturer: Simpson, Category: "straps", Name: "Strap Tie Coil", Description: "22-gauge strap coil", Use: "Custom length strapping", Load: "varies", Length: "25ft roll", Width: "1.25\"", Unit: "roll", PackQty: 1},
	{Model: "GLT4", Manufacturer: Simpson, Category: "beam_hangers", Name: "Girder Tie", Description: "Beam to girder connection", Use: "LVL/Glulam to girder", Load: "1510 lb", Fasteners: "10-10d nails", Unit: "each", PackQty: 25},
	{Model: "HGU410", Manufacturer: Simpson, Category: "beam_hangers", Name: "Heavy Glulam Hanger", Description: "Heavy beam hanger 4x10", Use: "Heavy beam connections", Load: "varies", Fasteners: "varies", Unit: "each", PackQty: 10},
	{Model: "TP", Manufacturer: Simpson, Category: "miscellaneous", Name: "Tie Plate", Description: "Flat tie plate", Use: "Wood-to-wood splices", Sizes: []string{"3x5", "5x7", "3x7", "5x5"}, Unit: "each", PackQty: 100},
	{Model: "MP", Manufacturer: Simpson, Category: "miscellaneous", Name: "Mending Plate", Description: "Flat mending plate", Use: "Repairs, connections", Sizes: []string{"2x4", "3x6", "4x8"}, Unit: "each", PackQty: 100},
	{Model: "NS", Manufacturer: Simpson, Category: "miscellaneous", Name: "Nail Stop/Plate", Description: "Protective nail plate", Use: "Protect pipes/wires in studs", Sizes: []string{"1.5x3", "1.5x5"}, Unit: "each", PackQty: 100},
	{Model: "RTC2Z", Manufacturer: Simpson, Category: "miscellaneous", Name: "Rigid Tie Connector", Description: "Rigid tie for roof framing", Use: "Ridge beam to rafter", Load: "500 lb", Fasteners: "8-8d nails", Unit: "each", PackQty: 50},
}

var mitekProducts = []Connector{
	{Model: "MII-20", Manufacturer: MiTek, Category: "truss_plates", Name: "Metal Connector Plate", Description: "20-gauge truss plate", Use: "Truss manufacturing", Sizes: []string{"3x4", "3x6", "4x6", "4x8", "5x8", "6x8"}, Unit: "each"},
	{Model: "MII-18", Manufacturer: MiTek, Category: "truss_plates", Name: "Metal Connector Plate Heavy", Description: "18-gauge truss plate", Use: "Heavy-duty truss connections", Sizes: []string{"4x6", "4x8", "6x8", "6x10"}, Unit: "each"},
	{Model: "EZ Base", Manufacturer: MiTek, Category: "embedded_anchors", Name: "EZ Base Post Anchor", Description: "Cast-in-place post anchor", Use: "Post to concrete foundation", Sizes: []string{"4x4", "4x6", "6x6"}, Unit: "each"},
	{Model: "WPA", Manufacturer: MiTek, Category: "embedded_anchors", Name: "Wedge Post Anchor", Description: "Retrofit post anchor", Use: "Post to existing concrete", Sizes: []string{"4x4", "6x6"}, Unit: "each"},
	{Model: "HAB", Manufacturer: MiTek, Category: "embedded_anchors", Name: "Heavy Anchor Bolt", Description: "Heavy-duty anchor bolt", Use: "Sill plate to foundation", Lengths: []string{"8\"", "10\"", "12\""}, Diameters: []string{"1/2\"", "5/8\"", "3/4\""}, Unit: "each"},
	{Model: "HCS", Manufacturer: MiTek, Category: "hurricane_products", Name: "Hurricane Clip Single", Description: "Single-sided hurricane clip", Use: "Truss to top plate", Load: "500 lb", Unit: "each"},
	{Model: "HCD", Manufacturer: MiTek, Category: "hurricane_products", Name: "Hurricane Clip Double", Description: "Double-sided hurricane clip", Use: "Heavy truss connection", Load: "800 lb", Unit: "each"},
	{Model: "TSB", Manufacturer: MiTek, Category: "hurricane_products", Name: "Truss Stabilizer Brace", Description: "Temporary bracing system", Use: "Truss erection bracing", Unit: "each"},
	{Model: "JH26", Manufacturer: MiTek, Category: "hangers", Name: "Joist Hanger 2x6", Description: "Standard joist hanger", Use: "2x6 joist to beam", Load: "750 lb", Unit: "each"},
	{Model: "JH28", Manufacturer: MiTek, Category: "hangers", Name: "Joist Hanger 2x8", Description: "Standard joist hanger", Use: "2x8 joist to beam", Load: "950 lb", Unit: "each"},
	{Model: "JH210", Manufacturer: MiTek, Category: "hangers", Name: "Joist Hanger 2x10", Description: "Standard joist hanger", Use: "2x10 joist to beam", Load: "1200 lb", Unit: "each"},
}

var packages = []Package{
	{
		Key:         "roof_truss_package",
		Name:        "Roof Truss Connection Package",
		Description: "Standard connectors for residential roof trusses",
		Items: []PackageItem{
			{Model: "H2.5A", Quantity: 2, Every: 1, Per: "truss", Note: "One each side of truss"},
			{Model: "LSTA12", Quantity: 1, Every: 4, Per: "truss", Note: "Lateral bracing"},
			{Model: "A35", Quantity: 1, Every: 1, Per: "truss", Note: "Blocking connections"},
		},
	},
	{
		Key:         "floor_joist_package",
		Name:        "Floor Joist Connection Package",
		Description: "Standard connectors for floor joists",
		Items: []PackageItem{
			{Model: "LUS210", Quantity: 2, Every: 1, Per: "joist", Note: "Each end of joist"},
			{Model: "A35", Quantity: 4, Every: 10, Per: "joist", Note: "Blocking"},
		},
	},
	{
		Key:         "deck_post_package",
		Name:        "Deck Post Connection Package",
		Description: "Connectors for deck posts",
		Items: []PackageItem{
			{Model: "ABU44", Quantity: 1, Every: 1, Per: "post", Note: "Post base"},
			{Model: "BC4", Quantity: 1, Every: 1, Per: "post", Note: "Post cap"},
		},
	},
	{
		Key:         "shear_wall_package",
		Name:        "Shear Wall Connection Package",
		Description: "Holdowns and straps for shear walls",
		Items: []PackageItem{
			{Model: "HDU4", Quantity: 2, Every: 1, Per: "wall_end", Note: "Each end of wall"},
			{Model: "MST37", Quantity: 4, Every: 1, Per: "wall", Note: "Plate straps"},
		},
	},
}
