package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgRecipeNotFoundError  = "Recipe not found"
	ErrMsgSessionNotFoundError = "Session not found. Create a new session to continue."
	ErrMsgEmptyCatalogError    = "No item catalog is loaded"
)

// Success messages for API responses
const (
	MsgSessionDeleted   = "Session deleted"
	MsgInventoryCleared = "Inventory cleared"
	MsgInventoryRemoved = "Item removed from inventory"
	MsgBuildListCleared = "Build list cleared"
	MsgBuildListRemoved = "Item removed from build list"
)

// Log messages
const (
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgRequestDecoded = "Request decoded"
	LogMsgServiceError   = "Request failed"
	LogMsgReadyzFailed   = "Readiness check failed"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
