package menu

// Persons bounds
const (
	MinPersons     = 1
	MaxPersons     = 12
	DefaultPersons = 2
)

// Listing limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// weekStartLayout is the date format of Menu.WeekStart
const weekStartLayout = "2006-01-02"

// Operations reported to metrics on conflicts
const (
	OperationReplaceRecipe = "replace_recipe"
	OperationFinalize      = "finalize"
)
