package render

// Status markers
const (
	MarkDone    = "✓"
	MarkPending = "✗"
)

// Section titles
const (
	TitleMaterials     = "Base Materials"
	TitleAllMaterials  = "All Materials"
	TitleShopping      = "Shopping List"
	TitleSteps         = "Crafting Steps"
	TitleBuildings     = "Buildings"
	TitleDiagnostics   = "Diagnostics"
	TitleIntermediates = "Intermediate Materials"
	TitleSkills        = "Required Skills"
)

// Messages shown in place of empty sections
const (
	MsgNothingNeeded  = "Nothing to craft."
	MsgNothingMissing = "You have everything you need."
)

// Rarity colours, indexed by domain rarity
const (
	ColorCommon    = "#9D9D9D"
	ColorUncommon  = "#1EFF00"
	ColorRare      = "#0070DD"
	ColorEpic      = "#A335EE"
	ColorLegendary = "#FF8000"

	ColorTitle = "#FFA500"
	ColorMuted = "#888888"
	ColorOK    = "#5FD75F"
	ColorWarn  = "#FF5F5F"
)

// treeIndent is the prefix added per recipe tree level
const treeIndent = "  "
