package prepare

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// remainingDecimals is the precision of quantities written back to the pantry
const remainingDecimals = 3

// Plan turns a consumption breakdown into conditional pantry writes. Items
// left empty are deleted; the rest are updated to their remaining quantity.
// Items whose stored quantity would not change are omitted.
func Plan(breakdown []Consumption) []domain.PlannedMutation {
	plan := make([]domain.PlannedMutation, 0, len(breakdown))

	for _, c := range breakdown {
		if c.Quantity <= 0 {
			continue
		}
		item := c.Item

		m := domain.PlannedMutation{
			ItemID:          item.ID,
			Name:            item.Name,
			From:            domain.Quantity{Quantity: item.Quantity, Unit: item.Unit},
			ExpectedVersion: item.Version,
		}

		remaining := math.Max(item.Quantity-c.Quantity, 0)
		if remaining <= domain.Epsilon {
			m.Action = domain.MutationDelete
			plan = append(plan, m)
			continue
		}

		rounded := roundRemaining(remaining)
		if rounded >= item.Quantity {
			continue
		}
		m.Action = domain.MutationUpdate
		m.To = &domain.Quantity{Quantity: rounded, Unit: item.Unit}
		plan = append(plan, m)
	}

	return plan
}

// roundRemaining rounds up to three decimals after dropping float noise, so a
// written remainder never records more consumption than was planned.
func roundRemaining(q float64) float64 {
	return decimal.NewFromFloat(q).Round(9).RoundCeil(remainingDecimals).InexactFloat64()
}
