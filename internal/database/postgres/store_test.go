package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Despensa_Go/internal/domain"
)

var created = time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)

func pantryItem(id, name string, qty float64, unit domain.Unit) domain.PantryItem {
	return domain.PantryItem{
		ID:             id,
		UserID:         "user-1",
		Name:           name,
		NormalizedName: name,
		Quantity:       qty,
		Unit:           unit,
		Category:       domain.PantryCategoryOther,
		CreatedAt:      created,
		UpdatedAt:      created,
		Version:        1,
	}
}

func seedPantry(t *testing.T, repo *PantryRepository) {
	t.Helper()
	require.NoError(t, repo.CreateItems(context.Background(), []domain.PantryItem{
		pantryItem("01", "tomate", 300, domain.UnitGram),
		pantryItem("02", "arroz", 1500, domain.UnitGram),
		pantryItem("03", "tomate", 1, domain.UnitKilogram),
		pantryItem("04", "tomillo", 10, domain.UnitGram),
	}))
}

func TestPantryRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewPantryRepository(requirePool(t))
	seedPantry(t, repo)

	t.Run("get", func(t *testing.T) {
		got, err := repo.GetItem(ctx, "user-1", "02")
		require.NoError(t, err)
		assert.Equal(t, "arroz", got.Name)
		assert.Nil(t, got.Notes)
		assert.Equal(t, created, got.CreatedAt)

		_, err = repo.GetItem(ctx, "user-2", "02")
		assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
	})

	t.Run("find by name in id order", func(t *testing.T) {
		got, err := repo.FindByNormalizedName(ctx, "user-1", "tomate")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "01", got[0].ID)
		assert.Equal(t, "03", got[1].ID)
	})

	t.Run("list prefix with cursor", func(t *testing.T) {
		got, err := repo.ListItems(ctx, "user-1", domain.PantryFilter{Search: "tom", Limit: 2, AfterID: "01"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "03", got[0].ID)
		assert.Equal(t, "04", got[1].ID)
	})
}

func TestPantryRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPantryRepository(requirePool(t))
	seedPantry(t, repo)

	item, err := repo.GetItem(ctx, "user-1", "01")
	require.NoError(t, err)
	notes := "maduros"
	item.Notes = &notes
	item.Quantity = 120

	updated, err := repo.UpdateItem(ctx, item, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "maduros", *updated.Notes)

	_, err = repo.UpdateItem(ctx, item, 1)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	stale := 1
	assert.ErrorIs(t, repo.DeleteItem(ctx, "user-1", "01", &stale), domain.ErrConcurrencyConflict)
	require.NoError(t, repo.DeleteItem(ctx, "user-1", "01", nil))
	assert.ErrorIs(t, repo.DeleteItem(ctx, "user-1", "01", nil), domain.ErrPantryItemNotFound)
}

func TestPantryRepository_ApplyBatchIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewPantryRepository(requirePool(t))
	seedPantry(t, repo)

	plan := []domain.PlannedMutation{
		{Action: domain.MutationDelete, ItemID: "01", ExpectedVersion: 1},
		{Action: domain.MutationUpdate, ItemID: "03", To: &domain.Quantity{Quantity: 0.6, Unit: domain.UnitKilogram}, ExpectedVersion: 3},
	}
	assert.ErrorIs(t, repo.ApplyBatch(ctx, "user-1", plan), domain.ErrConcurrencyConflict)

	_, err := repo.GetItem(ctx, "user-1", "01")
	require.NoError(t, err, "delete must be rolled back")

	plan[1].ExpectedVersion = 1
	require.NoError(t, repo.ApplyBatch(ctx, "user-1", plan))

	_, err = repo.GetItem(ctx, "user-1", "01")
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
	got, err := repo.GetItem(ctx, "user-1", "03")
	require.NoError(t, err)
	assert.Equal(t, 0.6, got.Quantity)
	assert.Equal(t, 2, got.Version)
}

func TestMenuRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(requirePool(t))

	menu := &domain.Menu{
		ID:        "m1",
		UserID:    "user-1",
		WeekStart: "2026-01-05",
		Persons:   3,
		Scope:     domain.MenuScopeWeekdays,
		Status:    domain.MenuStatusDraft,
		Days: map[domain.DayKey]domain.Recipe{
			domain.DayFriday: {ID: "r1", Title: "paella", Servings: 3, Steps: []string{"sofreir", "cocer"},
				Ingredients: []domain.RecipeIngredient{{Name: "arroz", Quantity: 0.4, Unit: domain.UnitKilogram}}},
		},
		CreatedAt: created,
		UpdatedAt: created,
		Version:   1,
	}
	require.NoError(t, repo.CreateMenu(ctx, menu))
	require.NoError(t, repo.CreateMenu(ctx, &domain.Menu{ID: "m2", UserID: "user-1", WeekStart: "2026-01-12",
		Persons: 1, Scope: domain.MenuScopeCustom, Status: domain.MenuStatusDraft,
		Days: map[domain.DayKey]domain.Recipe{}, CreatedAt: created, UpdatedAt: created, Version: 1}))

	got, err := repo.GetMenu(ctx, "user-1", "m1")
	require.NoError(t, err)
	assert.Equal(t, menu.Days, got.Days)
	assert.Empty(t, got.Prepared)

	list, err := repo.ListMenus(ctx, "user-1", 10, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m2", list[0].ID)

	entry := domain.PreparedEntry{At: created, Scope: domain.PrepareScopeWeekdays}
	appended, err := repo.AppendPrepared(ctx, "user-1", "m1", entry, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, appended.Version)
	assert.Equal(t, []domain.PreparedEntry{entry}, appended.Prepared)

	_, err = repo.AppendPrepared(ctx, "user-1", "m1", entry, 1)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	appended.Status = domain.MenuStatusFinal
	final, err := repo.UpdateMenu(ctx, appended, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.MenuStatusFinal, final.Status)
	assert.Equal(t, 3, final.Version)
	assert.Len(t, final.Prepared, 1)

	_, err = repo.UpdateMenu(ctx, &domain.Menu{ID: "nope", UserID: "user-1"}, 1)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}
