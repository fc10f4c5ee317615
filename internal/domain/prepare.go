package domain

// Epsilon is the tolerance used when comparing quantities
const Epsilon = 1e-9

// IngredientNeed is the aggregated requirement for one normalized name.
// Name keeps the first-seen spelling for reporting. MixedUnits is set when
// an occurrence could not be converted into Unit and was summed as-is.
type IngredientNeed struct {
	Name           string  `json:"name"`
	NormalizedName string  `json:"normalizedName"`
	Quantity       float64 `json:"quantity"`
	Unit           Unit    `json:"unit"`
	MixedUnits     bool    `json:"-"`
}

// Required returns the need as a Quantity
func (n IngredientNeed) Required() Quantity {
	return Quantity{Quantity: n.Quantity, Unit: n.Unit}
}

// ShortageReason classifies why a need cannot be fully satisfied
type ShortageReason string

const (
	ShortageNotFound     ShortageReason = "not_found"
	ShortageInsufficient ShortageReason = "insufficient"
	ShortageUnitMismatch ShortageReason = "unit_mismatch"
)

// Shortage reports one need that the pantry cannot fully cover
type Shortage struct {
	Name      string         `json:"name"`
	Required  Quantity       `json:"required"`
	Available *Quantity      `json:"available,omitempty"`
	Missing   Quantity       `json:"missing"`
	Reason    ShortageReason `json:"reason"`
}

// MutationAction is the kind of pantry write a plan performs
type MutationAction string

const (
	MutationUpdate MutationAction = "update"
	MutationDelete MutationAction = "delete"
)

// PlannedMutation is one conditional pantry write. To is set only for updates.
type PlannedMutation struct {
	Action          MutationAction `json:"action"`
	ItemID          string         `json:"id"`
	Name            string         `json:"name"`
	From            Quantity       `json:"from"`
	To              *Quantity      `json:"to,omitempty"`
	ExpectedVersion int            `json:"expectedVersion"`
}

// Consumed returns how much of the item the mutation removes, in the item's unit
func (m PlannedMutation) Consumed() float64 {
	if m.Action == MutationDelete || m.To == nil {
		return m.From.Quantity
	}
	return m.From.Quantity - m.To.Quantity
}
