package domain

import "time"

// PantryCategory groups pantry items for browsing
type PantryCategory string

const (
	PantryCategoryVegetables PantryCategory = "verduras"
	PantryCategoryFruits     PantryCategory = "frutas"
	PantryCategoryMeat       PantryCategory = "carnes"
	PantryCategoryDairy      PantryCategory = "lácteos"
	PantryCategoryGrains     PantryCategory = "granos"
	PantryCategorySpices     PantryCategory = "especias"
	PantryCategoryCanned     PantryCategory = "enlatados"
	PantryCategoryOther      PantryCategory = "otros"
)

// PantryCategories lists the accepted categories
var PantryCategories = []PantryCategory{
	PantryCategoryVegetables,
	PantryCategoryFruits,
	PantryCategoryMeat,
	PantryCategoryDairy,
	PantryCategoryGrains,
	PantryCategorySpices,
	PantryCategoryCanned,
	PantryCategoryOther,
}

// Valid reports whether c is one of PantryCategories
func (c PantryCategory) Valid() bool {
	for _, known := range PantryCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PantryItem is one inventory record. Version starts at 1 and is bumped by
// exactly one on every successful write; it is the only concurrency token.
type PantryItem struct {
	ID             string         `json:"id"`
	UserID         string         `json:"-"`
	Name           string         `json:"name"`
	NormalizedName string         `json:"normalizedName"`
	Quantity       float64        `json:"quantity"`
	Unit           Unit           `json:"unit"`
	Category       PantryCategory `json:"category"`
	Perishable     bool           `json:"perishable"`
	Notes          *string        `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Version        int            `json:"version"`
}

// PantryFilter selects a page of pantry items. Search is a normalized name
// prefix and takes precedence over Category.
type PantryFilter struct {
	Search   string
	Category PantryCategory
	Limit    int
	AfterID  string
}

// PantryPage is one page of a pantry listing
type PantryPage struct {
	Items      []PantryItem `json:"items"`
	NextCursor string       `json:"nextCursor,omitempty"`
}
