package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appliedMigrations(t *testing.T, ctx context.Context, m *Migrator) []string {
	t.Helper()
	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	var names []string
	for _, s := range statuses {
		if s.Applied {
			names = append(names, s.Name)
		}
	}
	return names
}

func TestMigrator_SQLiteUpDown(t *testing.T) {
	ctx := context.Background()

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	m, err := NewMigrator(db, DialectSQLite)
	require.NoError(t, err)

	applied, err := m.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Len(t, appliedMigrations(t, ctx, m), 1)

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('pantry_items', 'menus')`).Scan(&count))
	assert.Equal(t, 2, count)

	// Second run is a no-op
	applied, err = m.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	version, err := m.Down(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Empty(t, appliedMigrations(t, ctx, m))

	version, err = m.Down(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestNewMigrator_UnsupportedDialect(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = NewMigrator(db, Dialect("oracle"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnsupportedDialect)
}
