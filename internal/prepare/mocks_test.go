package prepare

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Despensa_Go/internal/domain"
)

type mockMenuRepo struct {
	mock.Mock
}

func (m *mockMenuRepo) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *mockMenuRepo) GetMenu(ctx context.Context, userID, id string) (*domain.Menu, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *mockMenuRepo) ListMenus(ctx context.Context, userID string, limit int, beforeID string) ([]domain.Menu, error) {
	args := m.Called(ctx, userID, limit, beforeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Menu), args.Error(1)
}

func (m *mockMenuRepo) UpdateMenu(ctx context.Context, menu *domain.Menu, expectedVersion int) (*domain.Menu, error) {
	args := m.Called(ctx, menu, expectedVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *mockMenuRepo) AppendPrepared(ctx context.Context, userID, menuID string, entry domain.PreparedEntry, expectedVersion int) (*domain.Menu, error) {
	args := m.Called(ctx, userID, menuID, entry, expectedVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

type mockPantryRepo struct {
	mock.Mock
}

func (m *mockPantryRepo) CreateItems(ctx context.Context, items []domain.PantryItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *mockPantryRepo) GetItem(ctx context.Context, userID, id string) (*domain.PantryItem, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PantryItem), args.Error(1)
}

func (m *mockPantryRepo) ListItems(ctx context.Context, userID string, filter domain.PantryFilter) ([]domain.PantryItem, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PantryItem), args.Error(1)
}

func (m *mockPantryRepo) FindByNormalizedName(ctx context.Context, userID, normalizedName string) ([]domain.PantryItem, error) {
	args := m.Called(ctx, userID, normalizedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PantryItem), args.Error(1)
}

func (m *mockPantryRepo) UpdateItem(ctx context.Context, item *domain.PantryItem, expectedVersion int) (*domain.PantryItem, error) {
	args := m.Called(ctx, item, expectedVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PantryItem), args.Error(1)
}

func (m *mockPantryRepo) DeleteItem(ctx context.Context, userID, id string, expectedVersion *int) error {
	return m.Called(ctx, userID, id, expectedVersion).Error(0)
}

func (m *mockPantryRepo) ApplyBatch(ctx context.Context, userID string, plan []domain.PlannedMutation) error {
	return m.Called(ctx, userID, plan).Error(0)
}
