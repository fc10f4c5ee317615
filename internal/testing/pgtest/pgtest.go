// Package pgtest starts a throwaway Postgres for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Image is the server version the schema is tested against
const Image = "postgres:15-alpine"

// Start runs a Postgres container and returns its connection string and a
// terminate function that is always safe to call. A missing Docker daemon is
// an error, never a panic.
func Start(ctx context.Context) (connStr string, terminate func(), err error) {
	terminate = func() {}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("postgres container panicked: %v", r)
		}
	}()

	container, err := postgres.Run(ctx, Image,
		postgres.WithDatabase("despensa_test"),
		postgres.WithUsername("despensa"),
		postgres.WithPassword("despensa"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", terminate, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate = func() {
		if err := container.Terminate(context.Background()); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", func() {}, fmt.Errorf("failed to get connection string: %w", err)
	}
	return connStr, terminate, nil
}

// Skip skips t in -short mode or when the container could not start
func Skip(t testing.TB, available bool) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !available {
		t.Skip("Skipping integration test: database not available")
	}
}
