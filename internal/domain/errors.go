package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgMenuNotFound       = "menu not found"
	ErrMsgPantryItemNotFound = "pantry item not found"

	// Unit errors
	ErrMsgUnknownUnit       = "unknown unit"
	ErrMsgIncompatibleUnits = "incompatible units"

	// Concurrency errors
	ErrMsgConcurrencyConflict = "changed by another process, refresh and retry"

	// Menu errors
	ErrMsgMenuFinalized     = "menu is finalized"
	ErrMsgEmptyDaySelection = "day selection is empty"
	ErrMsgInvalidDay        = "invalid day"
	ErrMsgInvalidScope      = "invalid scope"

	// Pantry errors
	ErrMsgNoFieldsToUpdate = "no fields to update"
	ErrMsgTooManyItems     = "too many items"
	ErrMsgInvalidCategory  = "invalid category"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidCursor = "invalid cursor"

	// Storage errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMenuNotFound       = errors.New(ErrMsgMenuNotFound)
	ErrPantryItemNotFound = errors.New(ErrMsgPantryItemNotFound)

	ErrUnknownUnit       = errors.New(ErrMsgUnknownUnit)
	ErrIncompatibleUnits = errors.New(ErrMsgIncompatibleUnits)

	// ErrConcurrencyConflict is returned when an expected version no longer matches.
	// Callers re-read and retry the whole operation; stale plans are never re-applied.
	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)

	ErrMenuFinalized     = errors.New(ErrMsgMenuFinalized)
	ErrEmptyDaySelection = errors.New(ErrMsgEmptyDaySelection)
	ErrInvalidDay        = errors.New(ErrMsgInvalidDay)
	ErrInvalidScope      = errors.New(ErrMsgInvalidScope)

	ErrNoFieldsToUpdate = errors.New(ErrMsgNoFieldsToUpdate)
	ErrTooManyItems     = errors.New(ErrMsgTooManyItems)
	ErrInvalidCategory  = errors.New(ErrMsgInvalidCategory)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidCursor = errors.New(ErrMsgInvalidCursor)
)
