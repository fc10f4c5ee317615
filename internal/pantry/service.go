package pantry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/idempotency"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/metrics"
	"github.com/osse101/Despensa_Go/internal/naming"
	"github.com/osse101/Despensa_Go/internal/repository"
	"github.com/osse101/Despensa_Go/internal/utils"
)

// Service defines the pantry inventory interface
type Service interface {
	Create(ctx context.Context, userID string, items []NewItem, idempotencyKey string) ([]domain.PantryItem, error)
	Get(ctx context.Context, userID, id string) (*domain.PantryItem, error)
	List(ctx context.Context, userID string, filter ListFilter) (*domain.PantryPage, error)
	Patch(ctx context.Context, userID, id string, patch ItemPatch, ifMatch *int) (*domain.PantryItem, error)
	Replace(ctx context.Context, userID, id string, item NewItem, ifMatch int) (*domain.PantryItem, error)
	Delete(ctx context.Context, userID, id string, ifMatch *int) error
}

// NewItem is a pantry item as submitted by a client. Unit may be any alias
// the resolver knows.
type NewItem struct {
	Name       string                `json:"name" validate:"required,max=120"`
	Quantity   float64               `json:"quantity" validate:"gte=0"`
	Unit       string                `json:"unit" validate:"required"`
	Category   domain.PantryCategory `json:"category,omitempty"`
	Perishable bool                  `json:"perishable"`
	Notes      *string               `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ItemPatch holds the fields to change; nil fields are left alone.
// ClearNotes removes the notes.
type ItemPatch struct {
	Name       *string
	Quantity   *float64
	Unit       *string
	Category   *domain.PantryCategory
	Perishable *bool
	Notes      *string
	ClearNotes bool
}

func (p ItemPatch) empty() bool {
	return p.Name == nil && p.Quantity == nil && p.Unit == nil && p.Category == nil &&
		p.Perishable == nil && p.Notes == nil && !p.ClearNotes
}

// ListFilter selects a page of the pantry
type ListFilter struct {
	Search   string
	Category domain.PantryCategory
	Limit    int
	Cursor   string
}

type service struct {
	repo     repository.Pantry
	resolver naming.Resolver
	idem     idempotency.Store
	now      func() time.Time
	newID    func() (uuid.UUID, error)
}

// NewService creates a new pantry service. idem may be nil, in which case
// idempotency keys are ignored.
func NewService(repo repository.Pantry, resolver naming.Resolver, idem idempotency.Store) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		idem:     idem,
		now:      time.Now,
		newID:    uuid.NewV7,
	}
}

// Create validates and inserts items atomically
func (s *service) Create(ctx context.Context, userID string, items []NewItem, idempotencyKey string) ([]domain.PantryItem, error) {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrInvalidInput)
	}
	if len(items) > MaxCreateItems {
		return nil, fmt.Errorf("%w: %d items, at most %d per request", domain.ErrTooManyItems, len(items), MaxCreateItems)
	}

	var key string
	if s.idem != nil && idempotencyKey != "" {
		key = idempotency.Key(userID, idempotencyOperation, idempotencyKey)
		replay, ok, err := s.replay(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			log.Info("Replaying idempotent pantry create", "idempotency_key", idempotencyKey)
			return replay, nil
		}
	}

	now := s.now().UTC()
	created := make([]domain.PantryItem, 0, len(items))
	for i, in := range items {
		item, err := s.buildItem(in)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		id, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate item id: %w", err)
		}
		item.ID = id.String()
		item.UserID = userID
		item.CreatedAt = now
		item.UpdatedAt = now
		item.Version = 1
		created = append(created, *item)
	}

	if err := s.repo.CreateItems(ctx, created); err != nil {
		return nil, err
	}
	metrics.PantryMutationsTotal.WithLabelValues(ActionCreate).Add(float64(len(created)))

	if key != "" {
		s.remember(ctx, key, created)
	}

	log.Info("Pantry items created", "count", len(created))
	return created, nil
}

func (s *service) replay(ctx context.Context, key string) ([]domain.PantryItem, bool, error) {
	raw, ok, err := s.idem.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	var items []domain.PantryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode stored response: %w", err)
	}
	metrics.IdempotentReplaysTotal.Inc()
	return items, true, nil
}

// remember stores the create response. The items are already written, so a
// failure here is only logged.
func (s *service) remember(ctx context.Context, key string, items []domain.PantryItem) {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(items)
	if err != nil {
		log.Error("Failed to encode idempotent response", "error", err)
		return
	}
	stored, err := s.idem.Put(ctx, key, raw)
	if err != nil {
		log.Error("Failed to store idempotent response", "error", err)
		return
	}
	if !stored {
		log.Warn("Idempotency key was claimed by a concurrent request", "key", key)
	}
}

// buildItem validates a submitted item and resolves its unit
func (s *service) buildItem(in NewItem) (*domain.PantryItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if len(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name longer than %d", domain.ErrInvalidInput, MaxNameLength)
	}
	if err := validQuantity(in.Quantity); err != nil {
		return nil, err
	}

	unit, err := s.resolver.ResolveUnit(in.Unit)
	if err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = domain.PantryCategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	return &domain.PantryItem{
		Name:           name,
		NormalizedName: naming.Normalize(name),
		Quantity:       in.Quantity,
		Unit:           unit,
		Category:       category,
		Perishable:     in.Perishable,
		Notes:          in.Notes,
	}, nil
}

func validQuantity(q float64) error {
	if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: quantity must be a finite number >= 0", domain.ErrInvalidInput)
	}
	return nil
}

// Get returns one item
func (s *service) Get(ctx context.Context, userID, id string) (*domain.PantryItem, error) {
	return s.repo.GetItem(ctx, userID, id)
}

// List returns one page of items in id order
func (s *service) List(ctx context.Context, userID string, filter ListFilter) (*domain.PantryPage, error) {
	afterID, err := utils.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, err
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, filter.Category)
	}

	limit := utils.ClampLimit(filter.Limit, DefaultListLimit, MaxListLimit)
	items, err := s.repo.ListItems(ctx, userID, domain.PantryFilter{
		Search:   naming.Normalize(filter.Search),
		Category: filter.Category,
		Limit:    limit + 1,
		AfterID:  afterID,
	})
	if err != nil {
		return nil, err
	}

	page := &domain.PantryPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.NextCursor = utils.EncodeCursor(page.Items[limit-1].ID)
	}
	return page, nil
}

// Patch applies the non-nil fields of patch
func (s *service) Patch(ctx context.Context, userID, id string, patch ItemPatch, ifMatch *int) (*domain.PantryItem, error) {
	if patch.empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	current, err := s.repo.GetItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	expected := current.Version
	if ifMatch != nil {
		expected = *ifMatch
	}

	next := *current
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" || len(name) > MaxNameLength {
			return nil, fmt.Errorf("%w: name must be 1..%d characters", domain.ErrInvalidInput, MaxNameLength)
		}
		next.Name = name
		next.NormalizedName = naming.Normalize(name)
	}
	if patch.Quantity != nil {
		if err := validQuantity(*patch.Quantity); err != nil {
			return nil, err
		}
		next.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		unit, err := s.resolver.ResolveUnit(*patch.Unit)
		if err != nil {
			return nil, err
		}
		next.Unit = unit
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, *patch.Category)
		}
		next.Category = *patch.Category
	}
	if patch.Perishable != nil {
		next.Perishable = *patch.Perishable
	}
	switch {
	case patch.ClearNotes:
		next.Notes = nil
	case patch.Notes != nil:
		notes := *patch.Notes
		next.Notes = &notes
	}

	return s.update(ctx, &next, expected, ActionUpdate)
}

// Replace overwrites every mutable field. ifMatch is mandatory.
func (s *service) Replace(ctx context.Context, userID, id string, in NewItem, ifMatch int) (*domain.PantryItem, error) {
	item, err := s.buildItem(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.UserID = userID
	return s.update(ctx, item, ifMatch, ActionReplace)
}

func (s *service) update(ctx context.Context, item *domain.PantryItem, expected int, action string) (*domain.PantryItem, error) {
	updated, err := s.repo.UpdateItem(ctx, item, expected)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.ConflictsTotal.WithLabelValues(action).Inc()
		}
		return nil, err
	}
	metrics.PantryMutationsTotal.WithLabelValues(action).Inc()
	logger.FromContext(ctx).Info("Pantry item updated", "item_id", updated.ID, "version", updated.Version)
	return updated, nil
}

// Delete removes an item. With ifMatch a version mismatch is a conflict;
// without it only a missing item fails.
func (s *service) Delete(ctx context.Context, userID, id string, ifMatch *int) error {
	if err := s.repo.DeleteItem(ctx, userID, id, ifMatch); err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.ConflictsTotal.WithLabelValues(ActionDelete).Inc()
		}
		return err
	}
	metrics.PantryMutationsTotal.WithLabelValues(ActionDelete).Inc()
	logger.FromContext(ctx).Info("Pantry item deleted", "item_id", id)
	return nil
}
