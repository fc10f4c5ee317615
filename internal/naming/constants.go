package naming

// ============================================================================
// Configuration Schema Constants
// ============================================================================

// SchemaUnitAliases is the schema identifier for unit alias configuration
const SchemaUnitAliases = "unit-aliases"

// UnitsSchemaPath is the JSON schema the unit alias file is validated against.
// Relative paths are resolved from the working directory up to the module root.
const UnitsSchemaPath = "configs/schemas/units.schema.json"

// DefaultUnitsPath is where the unit alias file lives unless configured
const DefaultUnitsPath = "configs/units.yaml"

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during configuration loading
const (
	ErrContextFailedToLoadUnits   = "failed to load unit aliases"
	ErrContextFailedToParseConfig = "failed to parse config %s"
)

// Configuration validation error messages
const (
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgDuplicateAlias      = "alias %q maps to both %s and %s"
)
