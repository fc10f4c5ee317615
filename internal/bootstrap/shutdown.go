package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Despensa_Go/internal/scheduler"
	"github.com/osse101/Despensa_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server           *server.Server
	Scheduler        *scheduler.Scheduler
	Repositories     *Repositories
	CloseIdempotency func()
}

// GracefulShutdown stops the HTTP server first so no new request reaches the
// stores, then releases the idempotency store and the database handle.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.CloseIdempotency != nil {
		components.CloseIdempotency()
	}

	if components.Repositories != nil && components.Repositories.DB != nil {
		slog.Info(LogMsgClosingStorage)
		components.Repositories.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
