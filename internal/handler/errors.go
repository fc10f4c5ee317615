package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthorized          = "Unauthorized"

	// Header and parameter error messages
	ErrMsgInvalidIfMatch  = "If-Match must carry an integer version"
	ErrMsgIfMatchRequired = "If-Match header is required"
	ErrMsgInvalidLimit    = "Invalid limit parameter"

	// Admin error messages
	ErrMsgReloadUnitsFailed = "Failed to reload unit aliases"
)

// Success messages for API responses
const (
	MsgUnitsReloadedSuccess = "Unit aliases reloaded successfully"
)

// Header names
const (
	HeaderIfMatch        = "If-Match"
	HeaderETag           = "ETag"
	HeaderIdempotencyKey = "Idempotency-Key"
)
