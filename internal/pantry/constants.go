package pantry

// Listing limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// MaxCreateItems is the most items one create call accepts
const MaxCreateItems = 100

// MaxNameLength bounds item names
const MaxNameLength = 120

// idempotencyOperation scopes create keys in the idempotency store
const idempotencyOperation = "pantry.create"

// Mutation actions reported to metrics
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionReplace = "replace"
	ActionDelete  = "delete"
)
