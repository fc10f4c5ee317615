package prepare

import (
	"fmt"
	"strings"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/naming"
)

// SelectDays resolves a preparation scope into the days it covers.
// all and weekdays only return days present in the menu, in calendar order.
// days returns the caller's list in the caller's order without duplicates.
func SelectDays(menu *domain.Menu, scope domain.PrepareScope, days []domain.DayKey) ([]domain.DayKey, error) {
	switch scope {
	case domain.PrepareScopeAll:
		return menu.PresentDays(), nil

	case domain.PrepareScopeWeekdays:
		selected := make([]domain.DayKey, 0, len(domain.WorkDays))
		for _, d := range domain.WorkDays {
			if _, ok := menu.Days[d]; ok {
				selected = append(selected, d)
			}
		}
		return selected, nil

	case domain.PrepareScopeDays:
		if len(days) == 0 {
			return nil, domain.ErrEmptyDaySelection
		}
		seen := make(map[domain.DayKey]bool, len(days))
		selected := make([]domain.DayKey, 0, len(days))
		for _, d := range days {
			if !d.Valid() {
				return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, string(d))
			}
			if seen[d] {
				continue
			}
			seen[d] = true
			selected = append(selected, d)
		}
		return selected, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidScope, string(scope))
}

// Aggregate sums the ingredient quantities of the selected days per
// normalized name. Needs are returned in first-seen order and keep the unit
// of their first occurrence. Selected days missing from the menu are skipped.
func Aggregate(menu *domain.Menu, scope domain.PrepareScope, days []domain.DayKey) ([]domain.IngredientNeed, error) {
	selected, err := SelectDays(menu, scope, days)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	needs := make([]domain.IngredientNeed, 0)

	for _, day := range selected {
		recipe, ok := menu.Days[day]
		if !ok {
			continue
		}

		for _, ing := range recipe.Ingredients {
			if !ing.Unit.Valid() {
				return nil, fmt.Errorf("%w: %q for ingredient %q on %s", domain.ErrUnknownUnit, string(ing.Unit), ing.Name, day)
			}
			key := naming.Normalize(ing.Name)
			if key == "" || ing.Quantity < 0 {
				return nil, fmt.Errorf("%w: ingredient %q on %s", domain.ErrInvalidInput, ing.Name, day)
			}

			i, seen := index[key]
			if !seen {
				index[key] = len(needs)
				needs = append(needs, domain.IngredientNeed{
					Name:           strings.TrimSpace(ing.Name),
					NormalizedName: key,
					Quantity:       ing.Quantity,
					Unit:           ing.Unit,
				})
				continue
			}

			need := &needs[i]
			qty := ing.Quantity
			if domain.IsConvertible(ing.Unit, need.Unit) {
				if qty, err = domain.Convert(ing.Quantity, ing.Unit, need.Unit); err != nil {
					return nil, err
				}
			} else {
				// Summed as-is; the matcher reports the mismatch downstream.
				need.MixedUnits = true
			}
			need.Quantity += qty
		}
	}

	return needs, nil
}
