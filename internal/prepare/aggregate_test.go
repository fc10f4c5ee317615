package prepare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Despensa_Go/internal/domain"
)

func ing(name string, qty float64, unit domain.Unit) domain.RecipeIngredient {
	return domain.RecipeIngredient{Name: name, Quantity: qty, Unit: unit}
}

func recipe(title string, ingredients ...domain.RecipeIngredient) domain.Recipe {
	return domain.Recipe{ID: title, Title: title, Servings: 2, Ingredients: ingredients}
}

func testMenu() *domain.Menu {
	return &domain.Menu{
		ID:      "menu-1",
		UserID:  "user-1",
		Version: 4,
		Days: map[domain.DayKey]domain.Recipe{
			domain.DayMonday: recipe("sopa",
				ing("Tomate", 200, domain.UnitGram),
				ing("Cebolla", 1, domain.UnitPiece),
			),
			domain.DayWednesday: recipe("arroz rojo",
				ing("Arroz", 0.5, domain.UnitKilogram),
				ing("tomate ", 0.3, domain.UnitKilogram),
			),
			domain.DaySaturday: recipe("pasta",
				ing("TOMATE", 100, domain.UnitGram),
				ing("Aceite", 2, domain.UnitTablespoon),
			),
		},
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSelectDays(t *testing.T) {
	menu := testMenu()

	tests := []struct {
		name    string
		scope   domain.PrepareScope
		days    []domain.DayKey
		want    []domain.DayKey
		wantErr error
	}{
		{"all present days", domain.PrepareScopeAll, nil, []domain.DayKey{domain.DayMonday, domain.DayWednesday, domain.DaySaturday}, nil},
		{"weekdays intersect present", domain.PrepareScopeWeekdays, nil, []domain.DayKey{domain.DayMonday, domain.DayWednesday}, nil},
		{"explicit days keep order and drop duplicates", domain.PrepareScopeDays,
			[]domain.DayKey{domain.DaySaturday, domain.DayMonday, domain.DaySaturday},
			[]domain.DayKey{domain.DaySaturday, domain.DayMonday}, nil},
		{"explicit days may be absent from menu", domain.PrepareScopeDays, []domain.DayKey{domain.DaySunday}, []domain.DayKey{domain.DaySunday}, nil},
		{"explicit scope with no days", domain.PrepareScopeDays, nil, nil, domain.ErrEmptyDaySelection},
		{"invalid day", domain.PrepareScopeDays, []domain.DayKey{"funday"}, nil, domain.ErrInvalidDay},
		{"invalid scope", domain.PrepareScope("weekend"), nil, nil, domain.ErrInvalidScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectDays(menu, tt.scope, tt.days)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate(t *testing.T) {
	menu := testMenu()

	tests := []struct {
		name  string
		scope domain.PrepareScope
		days  []domain.DayKey
		want  []domain.IngredientNeed
	}{
		{
			name:  "all days sum in first-seen unit",
			scope: domain.PrepareScopeAll,
			want: []domain.IngredientNeed{
				{Name: "Tomate", NormalizedName: "tomate", Quantity: 600, Unit: domain.UnitGram},
				{Name: "Cebolla", NormalizedName: "cebolla", Quantity: 1, Unit: domain.UnitPiece},
				{Name: "Arroz", NormalizedName: "arroz", Quantity: 0.5, Unit: domain.UnitKilogram},
				{Name: "Aceite", NormalizedName: "aceite", Quantity: 2, Unit: domain.UnitTablespoon},
			},
		},
		{
			name:  "weekdays only",
			scope: domain.PrepareScopeWeekdays,
			want: []domain.IngredientNeed{
				{Name: "Tomate", NormalizedName: "tomate", Quantity: 500, Unit: domain.UnitGram},
				{Name: "Cebolla", NormalizedName: "cebolla", Quantity: 1, Unit: domain.UnitPiece},
				{Name: "Arroz", NormalizedName: "arroz", Quantity: 0.5, Unit: domain.UnitKilogram},
			},
		},
		{
			name:  "explicit days start with wednesday so kg wins",
			scope: domain.PrepareScopeDays,
			days:  []domain.DayKey{domain.DayWednesday, domain.DaySaturday},
			want: []domain.IngredientNeed{
				{Name: "Arroz", NormalizedName: "arroz", Quantity: 0.5, Unit: domain.UnitKilogram},
				{Name: "tomate", NormalizedName: "tomate", Quantity: 0.4, Unit: domain.UnitKilogram},
				{Name: "Aceite", NormalizedName: "aceite", Quantity: 2, Unit: domain.UnitTablespoon},
			},
		},
		{
			name:  "selected day missing from menu",
			scope: domain.PrepareScopeDays,
			days:  []domain.DayKey{domain.DaySunday},
			want:  []domain.IngredientNeed{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(menu, tt.scope, tt.days)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	menu := testMenu()

	first, err := Aggregate(menu, domain.PrepareScopeAll, nil)
	require.NoError(t, err)
	second, err := Aggregate(menu, domain.PrepareScopeAll, nil)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestAggregate_MixedUnitsKeepFirstUnit(t *testing.T) {
	menu := &domain.Menu{Days: map[domain.DayKey]domain.Recipe{
		domain.DayMonday:  recipe("a", ing("Leche", 1, domain.UnitLiter)),
		domain.DayTuesday: recipe("b", ing("leche", 2, domain.UnitPiece)),
	}}

	got, err := Aggregate(menu, domain.PrepareScopeAll, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, domain.UnitLiter, got[0].Unit)
	assert.InDelta(t, 3, got[0].Quantity, 1e-9)
	assert.True(t, got[0].MixedUnits)
}

func TestAggregate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ingr    domain.RecipeIngredient
		wantErr error
	}{
		{"unknown unit", ing("sal", 1, domain.Unit("pinch")), domain.ErrUnknownUnit},
		{"blank name", ing("   ", 1, domain.UnitGram), domain.ErrInvalidInput},
		{"negative quantity", ing("sal", -1, domain.UnitGram), domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := &domain.Menu{Days: map[domain.DayKey]domain.Recipe{
				domain.DayFriday: recipe("x", tt.ingr),
			}}
			_, err := Aggregate(menu, domain.PrepareScopeAll, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
