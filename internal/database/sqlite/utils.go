package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/osse101/Despensa_Go/internal/logger"
)

// safeRollback rolls back a transaction and logs any error that isn't ErrTxDone
func safeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// prefixUpper returns the smallest string greater than every string starting
// with prefix, for index-friendly prefix range scans
func prefixUpper(prefix string) string {
	return prefix + "\U0010FFFF"
}

// whereClause joins conditions with AND
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
