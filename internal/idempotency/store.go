// Package idempotency remembers responses of write requests by client key so
// retried requests are answered without writing again.
package idempotency

import (
	"context"
	"time"
)

// DefaultTTL is how long a stored response is replayed
const DefaultTTL = 24 * time.Hour

// DefaultMemoryCapacity bounds the in-process store
const DefaultMemoryCapacity = 10000

// keyPrefix namespaces keys in shared backends
const keyPrefix = "despensa:idem:"

// Store keeps responses by idempotency key
type Store interface {
	// Get returns the stored response and whether one exists
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value unless the key is already taken. It reports whether
	// this call stored the value; the first writer wins.
	Put(ctx context.Context, key string, value []byte) (bool, error)
}

// Key builds a store key scoped to a user and an operation
func Key(userID, operation, clientKey string) string {
	return keyPrefix + userID + ":" + operation + ":" + clientKey
}
