package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Preparation metric names
const (
	MetricNamePreparationsTotal   = "menu_preparations_total"
	MetricNamePreparationDuration = "menu_preparation_duration_seconds"
	MetricNameShortagesTotal      = "menu_preparation_shortages_total"
	MetricNameConflictsTotal      = "concurrency_conflicts_total"
)

// Pantry metric names
const (
	MetricNamePantryMutationsTotal = "pantry_mutations_total"
)

// Activity metric names
const (
	MetricNameUserActionsTotal = "user_actions_total"
)

// Security metric names
const (
	MetricNameAuthFailuresTotal      = "auth_failures_total"
	MetricNameRateLimitedTotal       = "rate_limited_requests_total"
	MetricNameIdempotentReplaysTotal = "idempotent_replays_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Preparation metric help text
const (
	HelpTextPreparationsTotal   = "Total number of menu preparation attempts by scope and mode"
	HelpTextPreparationDuration = "Menu preparation latency in seconds"
	HelpTextShortagesTotal      = "Total number of shortages reported by reason"
	HelpTextConflictsTotal      = "Total number of optimistic concurrency conflicts by operation"
)

// Pantry metric help text
const (
	HelpTextPantryMutationsTotal = "Total number of pantry item writes by action"
)

// Activity metric help text
const (
	HelpTextUserActionsTotal = "Total number of authenticated write actions by outcome"
)

// Security metric help text
const (
	HelpTextAuthFailuresTotal      = "Total number of rejected authentication attempts"
	HelpTextRateLimitedTotal       = "Total number of requests rejected by the rate limiter"
	HelpTextIdempotentReplaysTotal = "Total number of requests answered from the idempotency store"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelScope     = "scope"
	LabelMode      = "mode"
	LabelReason    = "reason"
	LabelAction    = "action"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

// Preparation modes
const (
	ModeDryRun  = "dry_run"
	ModeConfirm = "confirm"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets are the request latency buckets in seconds
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// PreparationLatencyBuckets are the preparation latency buckets in seconds
var PreparationLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
