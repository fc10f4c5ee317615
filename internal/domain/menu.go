package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayKey identifies a day of the menu week (weeks start on Monday)
type DayKey string

const (
	DayMonday    DayKey = "mon"
	DayTuesday   DayKey = "tue"
	DayWednesday DayKey = "wed"
	DayThursday  DayKey = "thu"
	DayFriday    DayKey = "fri"
	DaySaturday  DayKey = "sat"
	DaySunday    DayKey = "sun"
)

// WeekDays is the full week in calendar order
var WeekDays = []DayKey{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday}

// WorkDays is the fixed mon..fri subset
var WorkDays = []DayKey{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday}

// ParseDayKey validates a day key
func ParseDayKey(raw string) (DayKey, error) {
	d := DayKey(strings.ToLower(strings.TrimSpace(raw)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, raw)
	}
	return d, nil
}

// Valid reports whether d is one of WeekDays
func (d DayKey) Valid() bool {
	return d.Index() >= 0
}

// Index is the position of d in the week, or -1
func (d DayKey) Index() int {
	for i, day := range WeekDays {
		if d == day {
			return i
		}
	}
	return -1
}

// RecipeIngredient is a single ingredient line of a recipe
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
}

// Recipe is the dish planned for one day
type Recipe struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Servings    int                `json:"servings"`
	DurationMin int                `json:"durationMin"`
	Calories    *int               `json:"calories,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Steps       []string           `json:"steps"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// MenuScope describes which days a menu was planned for
type MenuScope string

const (
	MenuScopeFullWeek MenuScope = "full_week"
	MenuScopeWeekdays MenuScope = "weekdays"
	MenuScopeCustom   MenuScope = "custom"
)

// MenuStatus is the lifecycle state of a menu
type MenuStatus string

const (
	MenuStatusDraft MenuStatus = "draft"
	MenuStatusFinal MenuStatus = "final"
)

// PrepareScope selects the days a preparation covers
type PrepareScope string

const (
	PrepareScopeAll      PrepareScope = "all"
	PrepareScopeWeekdays PrepareScope = "weekdays"
	PrepareScopeDays     PrepareScope = "days"
)

// ParsePrepareScope validates a preparation scope; empty means all
func ParsePrepareScope(raw string) (PrepareScope, error) {
	switch PrepareScope(strings.TrimSpace(raw)) {
	case "", PrepareScopeAll:
		return PrepareScopeAll, nil
	case PrepareScopeWeekdays:
		return PrepareScopeWeekdays, nil
	case PrepareScopeDays:
		return PrepareScopeDays, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScope, raw)
}

// PreparedEntry is one immutable record of the prepared ledger
type PreparedEntry struct {
	At     time.Time    `json:"at"`
	Scope  PrepareScope `json:"scope"`
	Days   []DayKey     `json:"days,omitempty"`
	DryRun bool         `json:"dryRun"`
}

// Menu is a weekly menu. Version is bumped on every write, including each
// preparation attempt, and is independent from pantry item versions.
type Menu struct {
	ID          string            `json:"id"`
	UserID      string            `json:"-"`
	WeekStart   string            `json:"weekStart"`
	Persons     int               `json:"persons"`
	Scope       MenuScope         `json:"scope"`
	Status      MenuStatus        `json:"status"`
	Days        map[DayKey]Recipe `json:"days"`
	Prepared    []PreparedEntry   `json:"prepared"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	FinalizedAt *time.Time        `json:"finalizedAt,omitempty"`
	Version     int               `json:"version"`
}

// PresentDays returns the menu's day keys in calendar order
func (m *Menu) PresentDays() []DayKey {
	days := make([]DayKey, 0, len(m.Days))
	for _, d := range WeekDays {
		if _, ok := m.Days[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// MenuPage is one page of a menu listing, newest first
type MenuPage struct {
	Items      []Menu `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}
