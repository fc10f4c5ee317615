package prepare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/metrics"
	"github.com/osse101/Despensa_Go/internal/repository"
)

// Service defines the menu preparation interface
type Service interface {
	// Prepare reconciles the selected menu days with the pantry. Shortages are
	// part of the result, not errors. domain.ErrConcurrencyConflict means the
	// caller must re-run the whole preparation against fresh state.
	Prepare(ctx context.Context, userID, menuID string, req Request) (*Result, error)
}

// Request selects the days to prepare and whether to touch the pantry
type Request struct {
	Scope  domain.PrepareScope `json:"scope,omitempty"`
	Days   []domain.DayKey     `json:"days,omitempty"`
	DryRun bool                `json:"dryRun"`
}

// MenuState is the menu as left by the preparation
type MenuState struct {
	ID       string                 `json:"id"`
	Version  int                    `json:"version"`
	Prepared []domain.PreparedEntry `json:"prepared"`
}

// Result is the preparation report
type Result struct {
	Prepared      bool                     `json:"prepared"`
	Scope         domain.PrepareScope      `json:"scope"`
	Days          []domain.DayKey          `json:"days,omitempty"`
	Shortages     []domain.Shortage        `json:"shortages"`
	PantryUpdates []domain.PlannedMutation `json:"pantryUpdates"`
	Menu          MenuState                `json:"menu"`
}

type service struct {
	menus             repository.Menu
	pantry            repository.Pantry
	lookupConcurrency int
	now               func() time.Time
}

// NewService creates a new preparation service
func NewService(menus repository.Menu, pantry repository.Pantry, lookupConcurrency int) Service {
	if lookupConcurrency < 1 {
		lookupConcurrency = DefaultLookupConcurrency
	}
	return &service{
		menus:             menus,
		pantry:            pantry,
		lookupConcurrency: lookupConcurrency,
		now:               time.Now,
	}
}

// Prepare runs aggregate, resolve and plan, applies the plan unless dry-run,
// and records the attempt on the menu's prepared ledger.
func (s *service) Prepare(ctx context.Context, userID, menuID string, req Request) (*Result, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	scope, err := domain.ParsePrepareScope(string(req.Scope))
	if err != nil {
		return nil, err
	}

	menu, err := s.menus.GetMenu(ctx, userID, menuID)
	if err != nil {
		return nil, err
	}

	var selectedDays []domain.DayKey
	if scope == domain.PrepareScopeDays {
		if selectedDays, err = SelectDays(menu, scope, req.Days); err != nil {
			return nil, err
		}
	}

	needs, err := Aggregate(menu, scope, req.Days)
	if err != nil {
		return nil, err
	}
	for _, need := range needs {
		if need.MixedUnits {
			log.Warn("Ingredient uses inconvertible units across recipes, summed as-is",
				"menu_id", menuID, "ingredient", need.Name, "unit", need.Unit)
		}
	}

	candidates, err := s.lookupCandidates(ctx, userID, needs)
	if err != nil {
		return nil, err
	}

	shortages := make([]domain.Shortage, 0)
	plan := make([]domain.PlannedMutation, 0)
	for i, need := range needs {
		res, err := Resolve(need, candidates[i])
		if err != nil {
			return nil, err
		}
		if res.Shortage != nil {
			shortages = append(shortages, *res.Shortage)
		}
		if len(res.Incompatible) > 0 {
			log.Debug("Pantry items with incompatible units left untouched",
				"ingredient", need.Name, "unit", need.Unit, "count", len(res.Incompatible))
		}
		plan = append(plan, Plan(res.Breakdown)...)
	}

	applied := false
	if !req.DryRun && len(plan) > 0 {
		if err := s.pantry.ApplyBatch(ctx, userID, plan); err != nil {
			if errors.Is(err, domain.ErrConcurrencyConflict) {
				metrics.ConflictsTotal.WithLabelValues(OperationApplyPlan).Inc()
				log.Warn("Pantry changed during preparation", "menu_id", menuID, "mutations", len(plan))
			}
			return nil, err
		}
		applied = true
	}

	entry := domain.PreparedEntry{
		At:     s.now().UTC(),
		Scope:  scope,
		Days:   selectedDays,
		DryRun: req.DryRun,
	}
	updated, err := s.menus.AppendPrepared(ctx, userID, menu.ID, entry, menu.Version)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.ConflictsTotal.WithLabelValues(OperationRecordPrepared).Inc()
		}
		if applied {
			// The pantry writes are committed; only the ledger entry is missing.
			log.Error("Pantry updated but prepared ledger was not recorded",
				"menu_id", menuID, "mutations", len(plan), "error", err)
		}
		return nil, fmt.Errorf("failed to record preparation: %w", err)
	}

	mode := metrics.ModeConfirm
	if req.DryRun {
		mode = metrics.ModeDryRun
	}
	metrics.PreparationsTotal.WithLabelValues(string(scope), mode).Inc()
	metrics.PreparationDuration.Observe(time.Since(start).Seconds())
	for _, sh := range shortages {
		metrics.ShortagesTotal.WithLabelValues(string(sh.Reason)).Inc()
	}
	if applied {
		for _, m := range plan {
			metrics.PantryMutationsTotal.WithLabelValues(string(m.Action)).Inc()
		}
	}

	log.Info("Menu prepared",
		"menu_id", menuID,
		"scope", scope,
		"dry_run", req.DryRun,
		"needs", len(needs),
		"shortages", len(shortages),
		"mutations", len(plan),
		"menu_version", updated.Version)

	return &Result{
		Prepared:      !req.DryRun,
		Scope:         scope,
		Days:          selectedDays,
		Shortages:     shortages,
		PantryUpdates: plan,
		Menu: MenuState{
			ID:       updated.ID,
			Version:  updated.Version,
			Prepared: updated.Prepared,
		},
	}, nil
}

// lookupCandidates fetches the pantry pool of every need with bounded
// parallelism. Results are indexed like needs.
func (s *service) lookupCandidates(ctx context.Context, userID string, needs []domain.IngredientNeed) ([][]domain.PantryItem, error) {
	results := make([][]domain.PantryItem, len(needs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.lookupConcurrency)
	for i, need := range needs {
		g.Go(func() error {
			items, err := s.pantry.FindByNormalizedName(gctx, userID, need.NormalizedName)
			if err != nil {
				return fmt.Errorf("failed to look up pantry items for %q: %w", need.Name, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
