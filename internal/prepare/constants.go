package prepare

// DefaultLookupConcurrency bounds parallel pantry lookups per preparation
const DefaultLookupConcurrency = 8

// Conflict operation labels
const (
	OperationApplyPlan      = "apply_plan"
	OperationRecordPrepared = "record_prepared"
)
