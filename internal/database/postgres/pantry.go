package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/repository"
)

// PantryRepository implements repository.Pantry for PostgreSQL
type PantryRepository struct {
	pool *pgxpool.Pool
}

// NewPantryRepository creates a new PantryRepository
func NewPantryRepository(pool *pgxpool.Pool) *PantryRepository {
	return &PantryRepository{pool: pool}
}

func scanPantryItem(row pgx.Row) (*domain.PantryItem, error) {
	var (
		item               domain.PantryItem
		unit, category     string
		createdAt, updated time.Time
	)
	err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.NormalizedName, &item.Quantity,
		&unit, &category, &item.Perishable, &item.Notes, &createdAt, &updated, &item.Version)
	if err != nil {
		return nil, err
	}
	item.Unit = domain.Unit(unit)
	item.Category = domain.PantryCategory(category)
	item.CreatedAt = createdAt.UTC()
	item.UpdatedAt = updated.UTC()
	return &item, nil
}

// CreateItems copies all items in a single COPY, which is atomic
func (r *PantryRepository) CreateItems(ctx context.Context, items []domain.PantryItem) error {
	if len(items) == 0 {
		return nil
	}

	_, err := r.pool.CopyFrom(ctx, pgx.Identifier{"pantry_items"}, pantryCopyColumns,
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			it := items[i]
			return []any{
				it.ID, it.UserID, it.Name, it.NormalizedName, it.Quantity, string(it.Unit),
				string(it.Category), it.Perishable, it.Notes, it.CreatedAt, it.UpdatedAt, it.Version,
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("failed to insert pantry items: %w", err)
	}
	return nil
}

// GetItem returns one pantry item
func (r *PantryRepository) GetItem(ctx context.Context, userID, id string) (*domain.PantryItem, error) {
	item, err := scanPantryItem(r.pool.QueryRow(ctx, sqlGetPantryItem, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to get pantry item: %w", err)
	}
	return item, nil
}

// ListItems returns a page of items ordered by id
func (r *PantryRepository) ListItems(ctx context.Context, userID string, filter domain.PantryFilter) ([]domain.PantryItem, error) {
	var b queryBuilder
	b.add("user_id = ?", userID)

	switch {
	case filter.Search != "":
		b.add("starts_with(name_normalized, ?)", filter.Search)
	case filter.Category != "":
		b.add("category = ?", string(filter.Category))
	}
	if filter.AfterID != "" {
		b.add("id > ?", filter.AfterID)
	}

	query := `SELECT ` + pantryColumns + ` FROM pantry_items` + b.where() + ` ORDER BY id LIMIT ` + b.next(filter.Limit)
	return r.queryItems(ctx, query, b.args...)
}

// FindByNormalizedName returns every item sharing the key, ordered by id
func (r *PantryRepository) FindByNormalizedName(ctx context.Context, userID, normalizedName string) ([]domain.PantryItem, error) {
	return r.queryItems(ctx, sqlFindPantryByName, userID, normalizedName)
}

func (r *PantryRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.PantryItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
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
	row := r.pool.QueryRow(ctx, sqlUpdatePantryItem,
		item.Name, item.NormalizedName, item.Quantity, string(item.Unit), string(item.Category),
		item.Perishable, item.Notes, item.UserID, item.ID, expectedVersion)

	updated, err := scanPantryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, item.UserID, item.ID)
		}
		return nil, fmt.Errorf("failed to update pantry item: %w", err)
	}
	return updated, nil
}

// DeleteItem removes an item, conditioned on expectedVersion when given
func (r *PantryRepository) DeleteItem(ctx context.Context, userID, id string, expectedVersion *int) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	if expectedVersion == nil {
		tag, err = r.pool.Exec(ctx, sqlDeletePantryItem, userID, id)
	} else {
		tag, err = r.pool.Exec(ctx, sqlDeletePantryItemVersioned, userID, id, *expectedVersion)
	}
	if err != nil {
		return fmt.Errorf("failed to delete pantry item: %w", err)
	}

	if tag.RowsAffected() == 1 {
		return nil
	}
	if expectedVersion == nil {
		return fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
	}
	return r.missOrConflict(ctx, userID, id)
}

// ApplyBatch sends the whole plan as one pgx batch inside a transaction.
// A mutation that touches no row means its version moved, and the
// transaction is rolled back.
func (r *PantryRepository) ApplyBatch(ctx context.Context, userID string, plan []domain.PlannedMutation) error {
	if len(plan) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range plan {
		switch m.Action {
		case domain.MutationUpdate:
			if m.To == nil {
				return fmt.Errorf("%w: update of %s has no target quantity", domain.ErrInvalidInput, m.ItemID)
			}
			batch.Queue(sqlApplyPantryUpdate, m.To.Quantity, userID, m.ItemID, m.ExpectedVersion)
		case domain.MutationDelete:
			batch.Queue(sqlDeletePantryItemVersioned, userID, m.ItemID, m.ExpectedVersion)
		default:
			return fmt.Errorf("%w: unknown mutation action %q", domain.ErrInvalidInput, m.Action)
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := execPlan(ctx, tx, batch, plan); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func execPlan(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, plan []domain.PlannedMutation) error {
	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for _, m := range plan {
		tag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to %s pantry item %s: %w", m.Action, m.ItemID, err)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("%w: pantry item %s", domain.ErrConcurrencyConflict, m.ItemID)
		}
	}
	return br.Close()
}

// missOrConflict tells a missing row from a version mismatch after a
// conditional write touched nothing
func (r *PantryRepository) missOrConflict(ctx context.Context, userID, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, sqlPantryItemExists, userID, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check pantry item: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
	}
	return fmt.Errorf("%w: pantry item %s", domain.ErrConcurrencyConflict, id)
}
