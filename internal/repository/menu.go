package repository

import (
	"context"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// Menu defines the interface for menu data access
type Menu interface {
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	GetMenu(ctx context.Context, userID, id string) (*domain.Menu, error)

	// ListMenus returns menus newest first, starting after beforeID when set
	ListMenus(ctx context.Context, userID string, limit int, beforeID string) ([]domain.Menu, error)

	// UpdateMenu writes days, scope, status and finalizedAt when the stored version
	// equals expectedVersion, bumping the version by one.
	UpdateMenu(ctx context.Context, menu *domain.Menu, expectedVersion int) (*domain.Menu, error)

	// AppendPrepared adds entry to the prepared ledger and bumps the menu
	// version, conditioned on expectedVersion.
	AppendPrepared(ctx context.Context, userID, menuID string, entry domain.PreparedEntry, expectedVersion int) (*domain.Menu, error)
}
