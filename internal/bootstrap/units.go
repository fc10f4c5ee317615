package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Despensa_Go/internal/config"
	"github.com/osse101/Despensa_Go/internal/naming"
	"github.com/osse101/Despensa_Go/internal/scheduler"
)

// JobReloadUnits is the scheduler name of the unit alias refresh
const JobReloadUnits = "reload_units"

// ScheduleUnitReload re-reads the unit alias file every UNITS_RELOAD_INTERVAL.
// Returns nil when periodic reloads are disabled.
func ScheduleUnitReload(cfg *config.Config, resolver naming.Resolver) *scheduler.Scheduler {
	if cfg.UnitsReloadInterval <= 0 {
		return nil
	}

	sched := scheduler.New()
	sched.Schedule(JobReloadUnits, cfg.UnitsReloadInterval, func(context.Context) error {
		return resolver.Reload()
	})
	slog.Info("Unit alias reload scheduled", "interval", cfg.UnitsReloadInterval, "path", cfg.UnitsConfigPath)
	return sched
}
