package building

// Display values
const (
	NoBuildingRequired = "No Building Required"
	StationSuffix      = " Station"
	TieredNameFormat   = "Tier %d %s"
	TierPrefix         = "Tier "
)

// Categories
const (
	CategoryCrafting    = "Crafting"
	CategoryProduction  = "Production"
	CategoryUtility     = "Utility"
	CategorySpecialized = "Specialized"
)

// Tier defaults
const (
	// DefaultBuildingTier is assumed for a named building without tier keywords
	DefaultBuildingTier = 1
	DefaultTierName     = "Basic"
)

// Error messages
const (
	ErrMsgReadTableFailed  = "failed to read building table: %w"
	ErrMsgParseTableFailed = "failed to parse building table: %w"
)

// Log messages
const (
	LogMsgTableLoaded = "Building correction table loaded"
)
