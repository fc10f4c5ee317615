package postgres

import (
	"fmt"
	"strings"
)

// queryBuilder accumulates WHERE conditions with numbered placeholders
type queryBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; each "?" in cond becomes the next $n placeholder
func (b *queryBuilder) add(cond string, args ...any) {
	for _, arg := range args {
		b.args = append(b.args, arg)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.conds = append(b.conds, cond)
}

// next binds one more argument and returns its placeholder
func (b *queryBuilder) next(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *queryBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
