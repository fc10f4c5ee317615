package prepare

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Despensa_Go/internal/domain"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		breakdown []Consumption
		want      []domain.PlannedMutation
	}{
		{
			name:      "zero consumption omitted",
			breakdown: []Consumption{{Item: item("a", "salt", 5, domain.UnitGram, 1), Quantity: 0}},
			want:      []domain.PlannedMutation{},
		},
		{
			name:      "exact consumption deletes",
			breakdown: []Consumption{{Item: item("a", "salt", 5, domain.UnitGram, 2), Quantity: 5}},
			want: []domain.PlannedMutation{
				{Action: domain.MutationDelete, ItemID: "a", Name: "salt", From: qty(5, domain.UnitGram), ExpectedVersion: 2},
			},
		},
		{
			name:      "remainder below epsilon deletes",
			breakdown: []Consumption{{Item: item("a", "salt", 5, domain.UnitGram, 2), Quantity: 5 - 1e-12}},
			want: []domain.PlannedMutation{
				{Action: domain.MutationDelete, ItemID: "a", Name: "salt", From: qty(5, domain.UnitGram), ExpectedVersion: 2},
			},
		},
		{
			name:      "remainder rounded up to three decimals",
			breakdown: []Consumption{{Item: item("a", "rice", 1.5, domain.UnitKilogram, 1), Quantity: 1.0 / 3}},
			want: []domain.PlannedMutation{
				{Action: domain.MutationUpdate, ItemID: "a", Name: "rice", From: qty(1.5, domain.UnitKilogram), To: qtyPtr(1.167, domain.UnitKilogram), ExpectedVersion: 1},
			},
		},
		{
			name:      "float noise does not bump the remainder",
			breakdown: []Consumption{{Item: item("a", "milk", 0.3, domain.UnitLiter, 1), Quantity: 0.1}},
			want: []domain.PlannedMutation{
				{Action: domain.MutationUpdate, ItemID: "a", Name: "milk", From: qty(0.3, domain.UnitLiter), To: qtyPtr(0.2, domain.UnitLiter), ExpectedVersion: 1},
			},
		},
		{
			name:      "consumption lost to rounding is omitted",
			breakdown: []Consumption{{Item: item("a", "salt", 0.3335, domain.UnitGram, 1), Quantity: 0.0001}},
			want:      []domain.PlannedMutation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plan(tt.breakdown))
		})
	}
}

// Consumed quantity, converted into the need's unit, never exceeds the need
func TestPlan_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	massUnits := []domain.Unit{domain.UnitGram, domain.UnitKilogram}
	volumeUnits := []domain.Unit{domain.UnitMilliliter, domain.UnitLiter, domain.UnitCup, domain.UnitTablespoon, domain.UnitTeaspoon}

	for round := 0; round < 500; round++ {
		units := massUnits
		if round%2 == 1 {
			units = volumeUnits
		}
		n := domain.IngredientNeed{
			Name:           "x",
			NormalizedName: "x",
			Quantity:       float64(rng.Intn(100000)) / 100,
			Unit:           units[rng.Intn(len(units))],
		}

		var candidates []domain.PantryItem
		for i := 0; i < 1+rng.Intn(4); i++ {
			candidates = append(candidates, item(
				fmt.Sprintf("%04d", rng.Intn(10000)),
				"x",
				float64(rng.Intn(200000))/1000,
				units[rng.Intn(len(units))],
				1+rng.Intn(5),
			))
		}

		res, err := Resolve(n, candidates)
		require.NoError(t, err)

		var consumed float64
		for _, m := range Plan(res.Breakdown) {
			c, err := domain.Convert(m.Consumed(), m.From.Unit, n.Unit)
			require.NoError(t, err)
			require.GreaterOrEqual(t, m.Consumed(), 0.0)
			consumed += c
		}

		tolerance := 1e-9 * float64(len(candidates)+1) * (1 + n.Quantity)
		require.LessOrEqual(t, consumed, n.Quantity+tolerance, "round %d: need %+v, candidates %+v", round, n, candidates)
	}
}
