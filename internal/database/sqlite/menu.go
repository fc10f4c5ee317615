package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// MenuRepository implements repository.Menu on SQLite
type MenuRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewMenuRepository creates a new SQLite menu repository
func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db, now: time.Now}
}

func scanMenu(row rowScanner) (*domain.Menu, error) {
	var (
		menu               domain.Menu
		scope, status      string
		days, prepared     string
		createdAt, updated int64
		finalizedAt        sql.NullInt64
	)
	err := row.Scan(&menu.ID, &menu.UserID, &menu.WeekStart, &menu.Persons, &scope, &status,
		&days, &prepared, &createdAt, &updated, &finalizedAt, &menu.Version)
	if err != nil {
		return nil, err
	}

	menu.Scope = domain.MenuScope(scope)
	menu.Status = domain.MenuStatus(status)
	if err := json.Unmarshal([]byte(days), &menu.Days); err != nil {
		return nil, fmt.Errorf("failed to decode menu days: %w", err)
	}
	if err := json.Unmarshal([]byte(prepared), &menu.Prepared); err != nil {
		return nil, fmt.Errorf("failed to decode prepared ledger: %w", err)
	}
	menu.CreatedAt = fromMillis(createdAt)
	menu.UpdatedAt = fromMillis(updated)
	if finalizedAt.Valid {
		t := fromMillis(finalizedAt.Int64)
		menu.FinalizedAt = &t
	}
	return &menu, nil
}

func nullableMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return toMillis(*t)
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

	_, err = r.db.ExecContext(ctx, sqlInsertMenu,
		menu.ID, menu.UserID, menu.WeekStart, menu.Persons, string(menu.Scope), string(menu.Status),
		string(days), string(ledger), toMillis(menu.CreatedAt), toMillis(menu.UpdatedAt),
		nullableMillis(menu.FinalizedAt), menu.Version)
	if err != nil {
		return fmt.Errorf("failed to insert menu: %w", err)
	}
	return nil
}

// GetMenu returns one menu
func (r *MenuRepository) GetMenu(ctx context.Context, userID, id string) (*domain.Menu, error) {
	menu, err := scanMenu(r.db.QueryRowContext(ctx, sqlGetMenu, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMenuNotFound, id)
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

// ListMenus returns menus newest first
func (r *MenuRepository) ListMenus(ctx context.Context, userID string, limit int, beforeID string) ([]domain.Menu, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}
	if beforeID != "" {
		conds = append(conds, "id < ?")
		args = append(args, beforeID)
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+menuColumns+` FROM menus`+whereClause(conds)+` ORDER BY id DESC LIMIT ?`, args...)
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

	updated, err := scanMenu(r.db.QueryRowContext(ctx, sqlUpdateMenu,
		string(days), string(menu.Scope), string(menu.Status), nullableMillis(menu.FinalizedAt), toMillis(r.now()),
		menu.UserID, menu.ID, expectedVersion))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missOrConflict(ctx, menu.UserID, menu.ID)
		}
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return updated, nil
}

// AppendPrepared appends to the prepared ledger and bumps the version
func (r *MenuRepository) AppendPrepared(ctx context.Context, userID, menuID string, entry domain.PreparedEntry, expectedVersion int) (*domain.Menu, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prepared entry: %w", err)
	}

	updated, err := scanMenu(r.db.QueryRowContext(ctx, sqlAppendPrepared,
		string(raw), toMillis(r.now()), userID, menuID, expectedVersion))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missOrConflict(ctx, userID, menuID)
		}
		return nil, fmt.Errorf("failed to record preparation: %w", err)
	}
	return updated, nil
}

func (r *MenuRepository) missOrConflict(ctx context.Context, userID, id string) error {
	var one int
	err := r.db.QueryRowContext(ctx, sqlMenuExists, userID, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrMenuNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to check menu: %w", err)
	}
	return fmt.Errorf("%w: menu %s", domain.ErrConcurrencyConflict, id)
}
