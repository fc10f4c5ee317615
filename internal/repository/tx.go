package repository

import (
	"context"
	"strings"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
)

// Tx is the part of a store transaction the repositories share
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is deferred right after Begin. Rolling back a transaction that
// already committed is silent; any other failure is logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || strings.Contains(err.Error(), domain.ErrMsgTxClosed) {
		return
	}
	logger.FromContext(ctx).Error("Failed to roll back transaction", "error", err)
}
