package menu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/metrics"
	"github.com/osse101/Despensa_Go/internal/naming"
	"github.com/osse101/Despensa_Go/internal/repository"
	"github.com/osse101/Despensa_Go/internal/utils"
)

// Service defines the weekly menu interface
type Service interface {
	Create(ctx context.Context, userID string, in NewMenu) (*domain.Menu, error)
	Get(ctx context.Context, userID, id string) (*domain.Menu, error)
	List(ctx context.Context, userID string, limit int, cursor string) (*domain.MenuPage, error)
	ReplaceRecipe(ctx context.Context, userID, id string, day domain.DayKey, recipe domain.Recipe, ifMatch *int) (*domain.Menu, error)
	Finalize(ctx context.Context, userID, id string, ifMatch *int) (*domain.Menu, error)
}

// NewMenu is a menu as submitted by a client, recipes already chosen.
// WeekStart defaults to the Monday of the current week.
type NewMenu struct {
	WeekStart string                          `json:"weekStart,omitempty"`
	Persons   int                             `json:"persons,omitempty" validate:"omitempty,min=1,max=12"`
	Days      map[domain.DayKey]domain.Recipe `json:"days" validate:"required,min=1"`
}

type service struct {
	repo     repository.Menu
	resolver naming.Resolver
	now      func() time.Time
	newID    func() (uuid.UUID, error)
}

// NewService creates a new menu service
func NewService(repo repository.Menu, resolver naming.Resolver) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
		newID:    uuid.NewV7,
	}
}

// Create validates and stores a draft menu
func (s *service) Create(ctx context.Context, userID string, in NewMenu) (*domain.Menu, error) {
	persons := in.Persons
	if persons == 0 {
		persons = DefaultPersons
	}
	if persons < MinPersons || persons > MaxPersons {
		return nil, fmt.Errorf("%w: persons must be between %d and %d", domain.ErrInvalidInput, MinPersons, MaxPersons)
	}

	now := s.now().UTC()
	weekStart := in.WeekStart
	if weekStart == "" {
		weekStart = MondayOf(now)
	} else if err := validateWeekStart(weekStart); err != nil {
		return nil, err
	}

	if len(in.Days) == 0 {
		return nil, fmt.Errorf("%w: a menu needs at least one day", domain.ErrInvalidInput)
	}
	days := make(map[domain.DayKey]domain.Recipe, len(in.Days))
	for day, recipe := range in.Days {
		if !day.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
		}
		normalized, err := s.normalizeRecipe(recipe, persons)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}
		days[day] = *normalized
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate menu id: %w", err)
	}

	menu := &domain.Menu{
		ID:        id.String(),
		UserID:    userID,
		WeekStart: weekStart,
		Persons:   persons,
		Scope:     DeriveScope(days),
		Status:    domain.MenuStatusDraft,
		Days:      days,
		Prepared:  []domain.PreparedEntry{},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	if err := s.repo.CreateMenu(ctx, menu); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Menu created", "menu_id", menu.ID, "scope", menu.Scope, "days", len(days))
	return menu, nil
}

// normalizeRecipe checks a recipe and resolves every ingredient unit
func (s *service) normalizeRecipe(recipe domain.Recipe, persons int) (*domain.Recipe, error) {
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.Title == "" {
		return nil, fmt.Errorf("%w: recipe title is required", domain.ErrInvalidInput)
	}
	if recipe.ID == "" {
		id, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate recipe id: %w", err)
		}
		recipe.ID = id.String()
	}
	if recipe.Servings <= 0 {
		recipe.Servings = persons
	}
	if recipe.DurationMin < 0 {
		return nil, fmt.Errorf("%w: duration must be >= 0", domain.ErrInvalidInput)
	}
	if recipe.Steps == nil {
		recipe.Steps = []string{}
	}

	ingredients := make([]domain.RecipeIngredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if ing.Name == "" {
			return nil, fmt.Errorf("%w: ingredient name is required", domain.ErrInvalidInput)
		}
		if ing.Quantity < 0 || math.IsNaN(ing.Quantity) || math.IsInf(ing.Quantity, 0) {
			return nil, fmt.Errorf("%w: quantity of %s must be >= 0", domain.ErrInvalidInput, ing.Name)
		}
		unit, err := s.resolver.ResolveUnit(string(ing.Unit))
		if err != nil {
			return nil, err
		}
		ing.Unit = unit
		ingredients = append(ingredients, ing)
	}
	recipe.Ingredients = ingredients
	return &recipe, nil
}

// Get returns one menu
func (s *service) Get(ctx context.Context, userID, id string) (*domain.Menu, error) {
	return s.repo.GetMenu(ctx, userID, id)
}

// List returns one page of menus, newest first
func (s *service) List(ctx context.Context, userID string, limit int, cursor string) (*domain.MenuPage, error) {
	beforeID, err := utils.DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	limit = utils.ClampLimit(limit, DefaultListLimit, MaxListLimit)
	menus, err := s.repo.ListMenus(ctx, userID, limit+1, beforeID)
	if err != nil {
		return nil, err
	}

	page := &domain.MenuPage{Items: menus}
	if len(menus) > limit {
		page.Items = menus[:limit]
		page.NextCursor = utils.EncodeCursor(page.Items[limit-1].ID)
	}
	return page, nil
}

// ReplaceRecipe sets the recipe of one day on a draft menu
func (s *service) ReplaceRecipe(ctx context.Context, userID, id string, day domain.DayKey, recipe domain.Recipe, ifMatch *int) (*domain.Menu, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}

	menu, err := s.repo.GetMenu(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if ifMatch != nil && *ifMatch != menu.Version {
		metrics.ConflictsTotal.WithLabelValues(OperationReplaceRecipe).Inc()
		return nil, fmt.Errorf("%w: menu %s", domain.ErrConcurrencyConflict, id)
	}
	if menu.Status == domain.MenuStatusFinal {
		return nil, domain.ErrMenuFinalized
	}

	normalized, err := s.normalizeRecipe(recipe, menu.Persons)
	if err != nil {
		return nil, err
	}

	next := *menu
	next.Days = make(map[domain.DayKey]domain.Recipe, len(menu.Days)+1)
	for d, r := range menu.Days {
		next.Days[d] = r
	}
	next.Days[day] = *normalized
	next.Scope = DeriveScope(next.Days)

	updated, err := s.repo.UpdateMenu(ctx, &next, menu.Version)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.ConflictsTotal.WithLabelValues(OperationReplaceRecipe).Inc()
		}
		return nil, err
	}

	logger.FromContext(ctx).Info("Menu recipe replaced", "menu_id", id, "day", day, "version", updated.Version)
	return updated, nil
}

// Finalize marks a menu final. Finalizing a final menu returns it unchanged.
func (s *service) Finalize(ctx context.Context, userID, id string, ifMatch *int) (*domain.Menu, error) {
	menu, err := s.repo.GetMenu(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if menu.Status == domain.MenuStatusFinal {
		return menu, nil
	}
	if ifMatch != nil && *ifMatch != menu.Version {
		metrics.ConflictsTotal.WithLabelValues(OperationFinalize).Inc()
		return nil, fmt.Errorf("%w: menu %s", domain.ErrConcurrencyConflict, id)
	}

	now := s.now().UTC()
	next := *menu
	next.Status = domain.MenuStatusFinal
	next.FinalizedAt = &now

	updated, err := s.repo.UpdateMenu(ctx, &next, menu.Version)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.ConflictsTotal.WithLabelValues(OperationFinalize).Inc()
		}
		return nil, err
	}

	logger.FromContext(ctx).Info("Menu finalized", "menu_id", id, "version", updated.Version)
	return updated, nil
}

// DeriveScope names the set of planned days: all seven, exactly mon..fri, or custom
func DeriveScope(days map[domain.DayKey]domain.Recipe) domain.MenuScope {
	has := func(list []domain.DayKey) bool {
		for _, d := range list {
			if _, ok := days[d]; !ok {
				return false
			}
		}
		return true
	}

	switch {
	case len(days) == len(domain.WeekDays) && has(domain.WeekDays):
		return domain.MenuScopeFullWeek
	case len(days) == len(domain.WorkDays) && has(domain.WorkDays):
		return domain.MenuScopeWeekdays
	}
	return domain.MenuScopeCustom
}

// MondayOf returns the Monday of t's week as YYYY-MM-DD
func MondayOf(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(weekStartLayout)
}

func validateWeekStart(raw string) error {
	t, err := time.Parse(weekStartLayout, raw)
	if err != nil {
		return fmt.Errorf("%w: weekStart must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if t.Weekday() != time.Monday {
		return fmt.Errorf("%w: weekStart %s is not a Monday", domain.ErrInvalidInput, raw)
	}
	return nil
}
