package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Unit is a canonical measurement unit tag
type Unit string

// Canonical unit tags
const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tbsp"
	UnitTeaspoon   Unit = "tsp"
	UnitPiece      Unit = "piece"
	UnitPack       Unit = "pack"
	UnitOther      Unit = "other"
)

// UnitCategory is the dimension a unit measures
type UnitCategory string

const (
	UnitCategoryMass   UnitCategory = "mass"
	UnitCategoryVolume UnitCategory = "volume"
	UnitCategoryOpaque UnitCategory = "opaque"
)

// Base units per convertible category
const (
	BaseUnitMass   = UnitGram
	BaseUnitVolume = UnitMilliliter
)

type unitDefinition struct {
	category UnitCategory
	// factor converts one of this unit into the category's base unit
	factor float64
}

var unitDefinitions = map[Unit]unitDefinition{
	UnitGram:       {category: UnitCategoryMass, factor: 1},
	UnitKilogram:   {category: UnitCategoryMass, factor: 1000},
	UnitMilliliter: {category: UnitCategoryVolume, factor: 1},
	UnitLiter:      {category: UnitCategoryVolume, factor: 1000},
	UnitCup:        {category: UnitCategoryVolume, factor: 240},
	UnitTablespoon: {category: UnitCategoryVolume, factor: 15},
	UnitTeaspoon:   {category: UnitCategoryVolume, factor: 5},
	UnitPiece:      {category: UnitCategoryOpaque, factor: 1},
	UnitPack:       {category: UnitCategoryOpaque, factor: 1},
	UnitOther:      {category: UnitCategoryOpaque, factor: 1},
}

// ParseUnit returns the canonical unit for an exact tag (case and surrounding
// whitespace ignored). Aliases are resolved by naming.Resolver, not here.
func ParseUnit(raw string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := unitDefinitions[u]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, raw)
	}
	return u, nil
}

// Valid reports whether u is a known canonical unit
func (u Unit) Valid() bool {
	_, ok := unitDefinitions[u]
	return ok
}

// Category returns the unit's dimensional category
func (u Unit) Category() (UnitCategory, error) {
	def, ok := unitDefinitions[u]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return def.category, nil
}

// IsConvertible reports whether quantities in a can be expressed in b.
// Opaque units only convert to themselves.
func IsConvertible(a, b Unit) bool {
	da, okA := unitDefinitions[a]
	db, okB := unitDefinitions[b]
	if !okA || !okB {
		return false
	}
	if a == b {
		return true
	}
	return da.category != UnitCategoryOpaque && da.category == db.category
}

// ToBase converts q from u into the base unit of u's category
func ToBase(q float64, u Unit) (float64, error) {
	def, ok := unitDefinitions[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return q * def.factor, nil
}

// FromBase converts a base-unit quantity into u
func FromBase(q float64, u Unit) (float64, error) {
	def, ok := unitDefinitions[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return q / def.factor, nil
}

// Convert expresses q (in from) as a quantity in to
func Convert(q float64, from, to Unit) (float64, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(from))
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(to))
	}
	if from == to {
		return q, nil
	}
	if !IsConvertible(from, to) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIncompatibleUnits, from, to)
	}
	base, err := ToBase(q, from)
	if err != nil {
		return 0, err
	}
	return FromBase(base, to)
}

// KnownUnits lists every canonical unit in a stable order
func KnownUnits() []Unit {
	units := make([]Unit, 0, len(unitDefinitions))
	for u := range unitDefinitions {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })
	return units
}

// Quantity is an amount expressed in a unit
type Quantity struct {
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}
