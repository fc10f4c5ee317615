package middleware

// Action names recorded for authenticated writes
const (
	ActionPantryCreate = "pantry_create"
	ActionPantryUpdate = "pantry_update"
	ActionPantryDelete = "pantry_delete"
	ActionMenuCreate   = "menu_create"
	ActionMenuUpdate   = "menu_update"
	ActionMenuFinalize = "menu_finalize"
	ActionMenuPrepare  = "menu_prepare"
	ActionReloadUnits  = "reload_units"
)

// Outcome label values
const (
	OutcomeSuccess     = "success"
	OutcomeRejected    = "rejected"
	OutcomeServerError = "error"
)

// Default Values
const (
	// EmptyUserID represents an empty or missing user ID
	EmptyUserID = ""
)

// Log Messages
const (
	LogMsgUserAction = "User action"
)
