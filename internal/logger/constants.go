package logger

// LevelWarning is accepted as an alias of slog's "warn"
const LevelWarning = "warning"

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

const (
	DefaultServiceName = "despensa"
	DefaultVersion     = "dev"
)

// Environments treated as production
const (
	EnvironmentProduction     = "prod"
	EnvironmentProductionLong = "production"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
