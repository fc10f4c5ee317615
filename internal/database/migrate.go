package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Dialect selects the migration set and SQL flavour
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// MigrationStatus describes one embedded migration
type MigrationStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies the embedded schema migrations
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator creates a migrator over an open database
func NewMigrator(db *sql.DB, dialect Dialect) (*Migrator, error) {
	var (
		gooseDialect goose.Dialect
		dir          string
	)
	switch dialect {
	case DialectPostgres:
		gooseDialect, dir = goose.DialectPostgres, MigrationsDirPostgres
	case DialectSQLite:
		gooseDialect, dir = goose.DialectSQLite3, MigrationsDirSQLite
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{provider: provider}, nil
}

// Up applies all pending migrations and returns how many ran
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		if r.Error == nil {
			slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
		}
	}
	if err != nil {
		return len(results), fmt.Errorf("failed to apply migrations: %w", err)
	}
	return len(results), nil
}

// Down rolls back the most recent migration and returns its version, or 0
// when nothing is applied
func (m *Migrator) Down(ctx context.Context) (int64, error) {
	result, err := m.provider.Down(ctx)
	if err != nil {
		if errors.Is(err, goose.ErrNoNextVersion) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to roll back migration: %w", err)
	}
	if result == nil || result.Source == nil {
		return 0, nil
	}
	slog.Default().Info(LogMsgMigrationRolledBack, "version", result.Source.Version)
	return result.Source.Version, nil
}

// Status reports every embedded migration in version order
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Name:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

// MigratePostgres opens a short-lived database/sql handle on connString and
// applies pending migrations
func MigratePostgres(ctx context.Context, connString string) (int, error) {
	db, err := sql.Open(DriverPgx, connString)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	defer db.Close()

	m, err := NewMigrator(db, DialectPostgres)
	if err != nil {
		return 0, err
	}
	return m.Up(ctx)
}
