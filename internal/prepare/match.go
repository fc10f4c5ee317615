package prepare

import (
	"fmt"
	"sort"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// Consumption is how much of one pantry item a need uses, in the item's unit
type Consumption struct {
	Item     domain.PantryItem
	Quantity float64
}

// Resolution is the outcome of matching one need against its candidates.
// Incompatible lists candidates excluded because their unit cannot be
// converted into the need's unit.
type Resolution struct {
	Need         domain.IngredientNeed
	Shortage     *domain.Shortage
	Breakdown    []Consumption
	Incompatible []domain.PantryItem
}

// Resolve matches a need against the pantry items sharing its normalized
// name. Candidates are consumed in id order. When the pool is short, what is
// available is still consumed and an insufficient shortage is reported. When
// no candidate is convertible nothing is consumed.
func Resolve(need domain.IngredientNeed, candidates []domain.PantryItem) (Resolution, error) {
	res := Resolution{Need: need}
	required := need.Required()

	if !need.Unit.Valid() {
		return res, fmt.Errorf("%w: %q for ingredient %q", domain.ErrUnknownUnit, string(need.Unit), need.Name)
	}
	for _, c := range candidates {
		if !c.Unit.Valid() {
			return res, fmt.Errorf("%w: %q for pantry item %s", domain.ErrUnknownUnit, string(c.Unit), c.ID)
		}
	}

	if len(candidates) == 0 {
		res.Shortage = &domain.Shortage{
			Name:     need.Name,
			Required: required,
			Missing:  required,
			Reason:   domain.ShortageNotFound,
		}
		return res, nil
	}

	ordered := make([]domain.PantryItem, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	var (
		compatible []domain.PantryItem
		converted  []float64
		available  float64
	)
	for _, c := range ordered {
		if !domain.IsConvertible(c.Unit, need.Unit) {
			res.Incompatible = append(res.Incompatible, c)
			continue
		}
		q, err := domain.Convert(c.Quantity, c.Unit, need.Unit)
		if err != nil {
			return res, err
		}
		compatible = append(compatible, c)
		converted = append(converted, q)
		available += q
	}

	if len(compatible) == 0 {
		var raw float64
		for _, c := range ordered {
			raw += c.Quantity
		}
		res.Shortage = &domain.Shortage{
			Name:      need.Name,
			Required:  required,
			Available: &domain.Quantity{Quantity: raw, Unit: ordered[0].Unit},
			Missing:   required,
			Reason:    domain.ShortageUnitMismatch,
		}
		return res, nil
	}

	if available+domain.Epsilon < need.Quantity {
		res.Shortage = &domain.Shortage{
			Name:      need.Name,
			Required:  required,
			Available: &domain.Quantity{Quantity: available, Unit: need.Unit},
			Missing:   domain.Quantity{Quantity: need.Quantity - available, Unit: need.Unit},
			Reason:    domain.ShortageInsufficient,
		}
	}

	toConsume := need.Quantity
	if available < toConsume {
		toConsume = available
	}

	for i, c := range compatible {
		if toConsume <= domain.Epsilon {
			break
		}
		if converted[i] <= 0 {
			continue
		}

		if converted[i] <= toConsume+domain.Epsilon {
			// Whole item: consume its stored quantity exactly
			res.Breakdown = append(res.Breakdown, Consumption{Item: c, Quantity: c.Quantity})
			toConsume -= converted[i]
			continue
		}

		inItemUnit, err := domain.Convert(toConsume, need.Unit, c.Unit)
		if err != nil {
			return res, err
		}
		res.Breakdown = append(res.Breakdown, Consumption{Item: c, Quantity: inItemUnit})
		toConsume = 0
	}

	return res, nil
}
