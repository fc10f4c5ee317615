package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Despensa_Go/internal/config"
	"github.com/osse101/Despensa_Go/internal/idempotency"
)

// InitializeIdempotency builds the configured idempotency store. The returned
// close function is never nil.
func InitializeIdempotency(ctx context.Context, cfg *config.Config) (idempotency.Store, func(), error) {
	if cfg.IdempotencyBackend == config.IdempotencyRedis {
		store, err := idempotency.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.IdempotencyTTL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info(LogMsgIdempotencyReady, "backend", cfg.IdempotencyBackend, "addr", cfg.RedisAddr)
		return store, store.Close, nil
	}

	slog.Info(LogMsgIdempotencyReady, "backend", config.IdempotencyMemory)
	store := idempotency.NewMemoryStore(idempotency.DefaultMemoryCapacity, cfg.IdempotencyTTL)
	return store, func() {}, nil
}
