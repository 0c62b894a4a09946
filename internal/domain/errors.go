package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgInvalidRecipe  = "invalid recipe"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Catalog errors
	ErrMsgEmptyCatalog = "catalog is empty"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// The planning engine itself never returns errors; these exist for the loading
// and transport boundaries.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidQuantity = errors.New("invalid " + ErrMsgInvalidQuantity)

	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe  = errors.New(ErrMsgInvalidRecipe)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrEmptyCatalog    = errors.New(ErrMsgEmptyCatalog)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
