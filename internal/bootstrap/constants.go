package bootstrap

// Log messages for component wiring
const (
	LogMsgCorrectionsLoaded   = "Building corrections loaded"
	LogMsgCorrectionsFallback = "Building corrections unavailable, using built-in table"
	LogMsgSchemaUnavailable   = "Catalog schema not found, skipping schema validation"
	LogMsgSessionEvicted      = "Session evicted"
	LogMsgPlannerReady        = "Planner ready"
)

// Error messages for component wiring
const (
	ErrMsgResolveCatalogPath = "failed to locate catalog"
	ErrMsgLoadCatalog        = "failed to load catalog"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionsDropped      = "Sessions dropped"
)
