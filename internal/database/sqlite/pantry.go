package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Despensa_Go/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// PantryRepository implements repository.Pantry on SQLite
type PantryRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewPantryRepository creates a new SQLite pantry repository
func NewPantryRepository(db *sql.DB) *PantryRepository {
	return &PantryRepository{db: db, now: time.Now}
}

func scanPantryItem(row rowScanner) (*domain.PantryItem, error) {
	var (
		item               domain.PantryItem
		unit, category     string
		notes              sql.NullString
		createdAt, updated int64
	)
	err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.NormalizedName, &item.Quantity,
		&unit, &category, &item.Perishable, &notes, &createdAt, &updated, &item.Version)
	if err != nil {
		return nil, err
	}
	item.Unit = domain.Unit(unit)
	item.Category = domain.PantryCategory(category)
	if notes.Valid {
		item.Notes = &notes.String
	}
	item.CreatedAt = fromMillis(createdAt)
	item.UpdatedAt = fromMillis(updated)
	return &item, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// CreateItems inserts all items in one transaction
func (r *PantryRepository) CreateItems(ctx context.Context, items []domain.PantryItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	stmt, err := tx.PrepareContext(ctx, sqlInsertPantryItem)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		_, err := stmt.ExecContext(ctx, it.ID, it.UserID, it.Name, it.NormalizedName, it.Quantity,
			string(it.Unit), string(it.Category), it.Perishable, nullableString(it.Notes),
			toMillis(it.CreatedAt), toMillis(it.UpdatedAt), it.Version)
		if err != nil {
			return fmt.Errorf("failed to insert pantry item %s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetItem returns one pantry item
func (r *PantryRepository) GetItem(ctx context.Context, userID, id string) (*domain.PantryItem, error) {
	item, err := scanPantryItem(r.db.QueryRowContext(ctx, sqlGetPantryItem, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to get pantry item: %w", err)
	}
	return item, nil
}

// ListItems returns a page of items ordered by id
func (r *PantryRepository) ListItems(ctx context.Context, userID string, filter domain.PantryFilter) ([]domain.PantryItem, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	switch {
	case filter.Search != "":
		conds = append(conds, "name_normalized >= ?", "name_normalized < ?")
		args = append(args, filter.Search, prefixUpper(filter.Search))
	case filter.Category != "":
		conds = append(conds, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.AfterID != "" {
		conds = append(conds, "id > ?")
		args = append(args, filter.AfterID)
	}
	args = append(args, filter.Limit)

	query := `SELECT ` + pantryColumns + ` FROM pantry_items` + whereClause(conds) + ` ORDER BY id LIMIT ?`
	return r.queryItems(ctx, query, args...)
}

// FindByNormalizedName returns every item sharing the key, ordered by id
func (r *PantryRepository) FindByNormalizedName(ctx context.Context, userID, normalizedName string) ([]domain.PantryItem, error) {
	return r.queryItems(ctx, sqlFindPantryByName, userID, normalizedName)
}

func (r *PantryRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.PantryItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.PantryItem, 0)
	for rows.Next() {
		item, err := scanPantryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pantry item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pantry items: %w", err)
	}
	return items, nil
}

// UpdateItem writes every mutable field conditioned on expectedVersion
func (r *PantryRepository) UpdateItem(ctx context.Context, item *domain.PantryItem, expectedVersion int) (*domain.PantryItem, error) {
	row := r.db.QueryRowContext(ctx, sqlUpdatePantryItem,
		item.Name, item.NormalizedName, item.Quantity, string(item.Unit), string(item.Category),
		item.Perishable, nullableString(item.Notes), toMillis(r.now()),
		item.UserID, item.ID, expectedVersion)

	updated, err := scanPantryItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missOrConflict(ctx, item.UserID, item.ID)
		}
		return nil, fmt.Errorf("failed to update pantry item: %w", err)
	}
	return updated, nil
}

// DeleteItem removes an item, conditioned on expectedVersion when given
func (r *PantryRepository) DeleteItem(ctx context.Context, userID, id string, expectedVersion *int) error {
	var (
		res sql.Result
		err error
	)
	if expectedVersion == nil {
		res, err = r.db.ExecContext(ctx, sqlDeletePantryItem, userID, id)
	} else {
		res, err = r.db.ExecContext(ctx, sqlDeletePantryItemVersioned, userID, id, *expectedVersion)
	}
	if err != nil {
		return fmt.Errorf("failed to delete pantry item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 1 {
		return nil
	}
	if expectedVersion == nil {
		return fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
	}
	return r.missOrConflict(ctx, userID, id)
}

// ApplyBatch executes a preparation plan in one transaction. Any mutation
// whose version precondition fails rolls back the whole batch.
func (r *PantryRepository) ApplyBatch(ctx context.Context, userID string, plan []domain.PlannedMutation) error {
	if len(plan) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	now := toMillis(r.now())
	for _, m := range plan {
		var res sql.Result
		switch m.Action {
		case domain.MutationUpdate:
			if m.To == nil {
				return fmt.Errorf("%w: update of %s has no target quantity", domain.ErrInvalidInput, m.ItemID)
			}
			res, err = tx.ExecContext(ctx, sqlApplyPantryUpdate, m.To.Quantity, now, userID, m.ItemID, m.ExpectedVersion)
		case domain.MutationDelete:
			res, err = tx.ExecContext(ctx, sqlDeletePantryItemVersioned, userID, m.ItemID, m.ExpectedVersion)
		default:
			return fmt.Errorf("%w: unknown mutation action %q", domain.ErrInvalidInput, m.Action)
		}
		if err != nil {
			return fmt.Errorf("failed to %s pantry item %s: %w", m.Action, m.ItemID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n != 1 {
			return fmt.Errorf("%w: pantry item %s", domain.ErrConcurrencyConflict, m.ItemID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// missOrConflict tells a missing row from a version mismatch after a
// conditional write touched nothing
func (r *PantryRepository) missOrConflict(ctx context.Context, userID, id string) error {
	var one int
	err := r.db.QueryRowContext(ctx, sqlPantryItemExists, userID, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to check pantry item: %w", err)
	}
	return fmt.Errorf("%w: pantry item %s", domain.ErrConcurrencyConflict, id)
}
