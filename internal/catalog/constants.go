package catalog

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the catalog file under configs/catalog
	ConfigFileName = "items.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgDanglingReferences = "recipes reference unknown items"
	ErrMsgCyclesFound        = "recipe graph contains cycles"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemEmptyName          = "%w: item '%s' has empty name"
	ErrFmtItemBadRarity          = "%w: item '%s' has rarity %d outside 1..5"
	ErrFmtRecipeBadOutput        = "%w: item '%s' recipe %d has output_quantity %d"
	ErrFmtIngredientBadQuantity  = "%w: item '%s' recipe %d ingredient %d has quantity %d"
	ErrFmtIngredientNegativeID   = "%w: item '%s' recipe %d has negative ingredient id %d"
	ErrFmtSkillMissingName       = "%w: item '%s' recipe %d has a skill requirement without skill_name"
	ErrFmtSchemaValidationFailed = "schema validation failed for %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded     = "Catalog loaded"
	LogMsgDanglingReference = "Recipe references unknown item"
	LogMsgCycleDetected     = "Recipe graph cycle detected"
	LogMsgSchemaSkipped     = "No catalog schema configured, skipping schema validation"
)
