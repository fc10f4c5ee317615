package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/osse101/Despensa_Go/internal/config"
	"github.com/osse101/Despensa_Go/internal/database"
	"github.com/osse101/Despensa_Go/internal/database/postgres"
	"github.com/osse101/Despensa_Go/internal/database/sqlite"
	"github.com/osse101/Despensa_Go/internal/repository"
)

// Repositories holds the repository implementations of the configured
// storage backend together with the handle used for readiness and shutdown.
type Repositories struct {
	Pantry repository.Pantry
	Menu   repository.Menu
	DB     database.Pool
}

// InitializeRepositories opens the configured store, applies migrations when
// AUTO_MIGRATE is on, and builds the repositories on top of it.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		connString := cfg.GetDBConnString()
		if cfg.AutoMigrate {
			applied, err := database.MigratePostgres(ctx, connString)
			if err != nil {
				return nil, err
			}
			slog.Info(LogMsgMigrationsApplied, "count", applied)
		}

		pool, err := database.NewPool(connString, cfg.DBMaxConns, PostgresMaxConnIdleTime, PostgresMaxConnLifetime)
		if err != nil {
			return nil, err
		}
		slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend)
		return &Repositories{
			Pantry: postgres.NewPantryRepository(pool),
			Menu:   postgres.NewMenuRepository(pool),
			DB:     pool,
		}, nil

	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := migrateSQLite(ctx, db); err != nil {
				db.Close()
				return nil, err
			}
		}
		slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend, "path", cfg.SQLitePath)
		return &Repositories{
			Pantry: sqlite.NewPantryRepository(db),
			Menu:   sqlite.NewMenuRepository(db),
			DB:     database.SQLPinger{DB: db},
		}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedStorage, cfg.StorageBackend)
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	m, err := database.NewMigrator(db, database.DialectSQLite)
	if err != nil {
		return err
	}
	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	slog.Info(LogMsgMigrationsApplied, "count", applied)
	return nil
}

// OpenMigrator opens a plain database/sql handle for the configured backend
// and wraps it in a migrator. The caller closes the returned handle.
func OpenMigrator(cfg *config.Config) (*database.Migrator, *sql.DB, error) {
	var (
		db      *sql.DB
		dialect database.Dialect
		err     error
	)

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		dialect = database.DialectPostgres
		db, err = sql.Open(database.DriverPgx, cfg.GetDBConnString())
	case config.StorageSQLite:
		dialect = database.DialectSQLite
		db, err = database.OpenSQLite(cfg.SQLitePath)
	default:
		return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedStorage, cfg.StorageBackend)
	}
	if err != nil {
		return nil, nil, err
	}

	m, err := database.NewMigrator(db, dialect)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return m, db, nil
}
