package repository

import (
	"context"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// Pantry defines the interface for pantry data access
type Pantry interface {
	// CreateItems inserts all items or none
	CreateItems(ctx context.Context, items []domain.PantryItem) error
	GetItem(ctx context.Context, userID, id string) (*domain.PantryItem, error)
	ListItems(ctx context.Context, userID string, filter domain.PantryFilter) ([]domain.PantryItem, error)

	// FindByNormalizedName returns every item sharing the key, ordered by id ascending
	FindByNormalizedName(ctx context.Context, userID, normalizedName string) ([]domain.PantryItem, error)

	// UpdateItem writes all mutable fields when the stored version equals
	// expectedVersion and returns the stored row with its new version.
	UpdateItem(ctx context.Context, item *domain.PantryItem, expectedVersion int) (*domain.PantryItem, error)

	// DeleteItem removes an item. A nil expectedVersion deletes unconditionally.
	DeleteItem(ctx context.Context, userID, id string, expectedVersion *int) error

	// ApplyBatch executes a preparation plan atomically. Every mutation is
	// conditioned on its expected version; one failed condition rejects the
	// whole batch with domain.ErrConcurrencyConflict.
	ApplyBatch(ctx context.Context, userID string, plan []domain.PlannedMutation) error
}
