package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// MenuRepository implements repository.Menu for PostgreSQL
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func scanMenu(row pgx.Row) (*domain.Menu, error) {
	var (
		menu               domain.Menu
		scope, status      string
		createdAt, updated time.Time
		finalizedAt        *time.Time
	)
	err := row.Scan(&menu.ID, &menu.UserID, &menu.WeekStart, &menu.Persons, &scope, &status,
		&menu.Days, &menu.Prepared, &createdAt, &updated, &finalizedAt, &menu.Version)
	if err != nil {
		return nil, err
	}

	menu.Scope = domain.MenuScope(scope)
	menu.Status = domain.MenuStatus(status)
	if menu.Prepared == nil {
		menu.Prepared = []domain.PreparedEntry{}
	}
	menu.CreatedAt = createdAt.UTC()
	menu.UpdatedAt = updated.UTC()
	if finalizedAt != nil {
		t := finalizedAt.UTC()
		menu.FinalizedAt = &t
	}
	return &menu, nil
}

// CreateMenu inserts a menu
func (r *MenuRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	days, err := json.Marshal(menu.Days)
	if err != nil {
		return fmt.Errorf("failed to encode menu days: %w", err)
	}
	prepared := menu.Prepared
	if prepared == nil {
		prepared = []domain.PreparedEntry{}
	}
	ledger, err := json.Marshal(prepared)
	if err != nil {
		return fmt.Errorf("failed to encode prepared ledger: %w", err)
	}

	_, err = r.pool.Exec(ctx, sqlInsertMenu,
		menu.ID, menu.UserID, menu.WeekStart, menu.Persons, string(menu.Scope), string(menu.Status),
		string(days), string(ledger), menu.CreatedAt, menu.UpdatedAt, menu.FinalizedAt, menu.Version)
	if err != nil {
		return fmt.Errorf("failed to insert menu: %w", err)
	}
	return nil
}

// GetMenu returns one menu
func (r *MenuRepository) GetMenu(ctx context.Context, userID, id string) (*domain.Menu, error) {
	menu, err := scanMenu(r.pool.QueryRow(ctx, sqlGetMenu, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMenuNotFound, id)
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

// ListMenus returns menus newest first
func (r *MenuRepository) ListMenus(ctx context.Context, userID string, limit int, beforeID string) ([]domain.Menu, error) {
	var b queryBuilder
	b.add("user_id = ?", userID)
	if beforeID != "" {
		b.add("id < ?", beforeID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+menuColumns+` FROM menus`+b.where()+` ORDER BY id DESC LIMIT `+b.next(limit), b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	menus := make([]domain.Menu, 0)
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, *menu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menus: %w", err)
	}
	return menus, nil
}

// UpdateMenu writes days, scope, status and finalizedAt conditioned on expectedVersion
func (r *MenuRepository) UpdateMenu(ctx context.Context, menu *domain.Menu, expectedVersion int) (*domain.Menu, error) {
	days, err := json.Marshal(menu.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu days: %w", err)
	}

	updated, err := scanMenu(r.pool.QueryRow(ctx, sqlUpdateMenu,
		string(days), string(menu.Scope), string(menu.Status), menu.FinalizedAt, menu.UserID, menu.ID, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, menu.UserID, menu.ID)
		}
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return updated, nil
}

// AppendPrepared appends to the prepared ledger and bumps the version
func (r *MenuRepository) AppendPrepared(ctx context.Context, userID, menuID string, entry domain.PreparedEntry, expectedVersion int) (*domain.Menu, error) {
	// jsonb || array concatenates, so the entry goes in as a one-element array
	raw, err := json.Marshal([]domain.PreparedEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prepared entry: %w", err)
	}

	updated, err := scanMenu(r.pool.QueryRow(ctx, sqlAppendPrepared, string(raw), userID, menuID, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, userID, menuID)
		}
		return nil, fmt.Errorf("failed to record preparation: %w", err)
	}
	return updated, nil
}

func (r *MenuRepository) missOrConflict(ctx context.Context, userID, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, sqlMenuExists, userID, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check menu: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrMenuNotFound, id)
	}
	return fmt.Errorf("%w: menu %s", domain.ErrConcurrencyConflict, id)
}
