package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Despensa_Go/internal/database"
	"github.com/osse101/Despensa_Go/internal/testing/pgtest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

// setupDatabase migrates a fresh container and opens testPool. Failures
// leave testPool nil so the tests skip.
func setupDatabase(ctx context.Context) (terminate func()) {
	connStr, terminate, err := pgtest.Start(ctx)
	if err != nil {
		fmt.Printf("WARNING: %v\n", err)
		return terminate
	}

	if _, err := database.MigratePostgres(ctx, connStr); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, time.Hour)
	if err != nil {
		fmt.Printf("WARNING: Failed to open pool: %v\n", err)
		return terminate
	}
	testPool = pool

	return func() {
		pool.Close()
		terminate()
	}
}

// requirePool skips the test when no database is available and empties
// the tables otherwise
func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pgtest.Skip(t, testPool != nil)

	_, err := testPool.Exec(context.Background(), "TRUNCATE pantry_items, menus")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return testPool
}
