package crafting

// Log messages
const (
	LogMsgInventorySet        = "Inventory updated"
	LogMsgInventoryCleared    = "Inventory cleared"
	LogMsgBuildListAdded      = "Item added to build list"
	LogMsgBuildListUpdated    = "Build list entry updated"
	LogMsgBuildListRemoved    = "Item removed from build list"
	LogMsgBuildListCleared    = "Build list cleared"
	LogMsgPlanComputed        = "Plan computed"
	LogMsgDiagnostics         = "Plan degraded: cycles or unknown items in recipe graph"
	LogMsgBuildingsCorrected  = "Building requirements corrected"
	LogMsgResolveMissed       = "Item name not resolved"
	LogMsgCalculateCalled     = "Calculate called"
	LogMsgRecipeTreeCalled    = "RecipeTree called"
	LogMsgItemListingComputed = "Item listing computed"
)

// Error message formats
const (
	ErrFmtUnknownItem       = "%w: %s"
	ErrFmtInvalidRecipeType = "%w: recipe type %q"
	ErrFmtEmptyName         = "%w: name is required"
)
