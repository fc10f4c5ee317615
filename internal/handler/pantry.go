package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/pantry"
)

// CreatePantryRequest adds one or more items to the caller's pantry
type CreatePantryRequest struct {
	Items []pantry.NewItem `json:"items" validate:"required,min=1,max=100,dive"`
}

// PantryItemsResponse wraps created items
type PantryItemsResponse struct {
	Items []domain.PantryItem `json:"items"`
}

// nullableString tells an absent field apart from an explicit null
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// PatchPantryRequest changes only the fields present in the body.
// "notes": null clears the notes.
type PatchPantryRequest struct {
	Name       *string        `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Quantity   *float64       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit       *string        `json:"unit,omitempty" validate:"omitempty,min=1"`
	Category   *string        `json:"category,omitempty" validate:"omitempty,category"`
	Perishable *bool          `json:"perishable,omitempty"`
	Notes      nullableString `json:"notes" swaggertype:"string"`
}

func (req PatchPantryRequest) toPatch() pantry.ItemPatch {
	patch := pantry.ItemPatch{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Perishable: req.Perishable,
	}
	if req.Category != nil {
		category := domain.PantryCategory(*req.Category)
		patch.Category = &category
	}
	if req.Notes.Set {
		if req.Notes.Value == nil {
			patch.ClearNotes = true
		} else {
			patch.Notes = req.Notes.Value
		}
	}
	return patch
}

// HandleListPantry lists the caller's pantry items
// @Summary List pantry items
// @Description Keyset-paginated listing. search is a name prefix and wins over category.
// @Tags pantry
// @Produce json
// @Param search query string false "Name prefix"
// @Param category query string false "Category"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} domain.PantryPage
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/pantry [get]
// @Security BearerAuth
func HandleListPantry(svc pantry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		limit, ok := getQueryLimit(r, w)
		if !ok {
			return
		}

		page, err := svc.List(r.Context(), userID, pantry.ListFilter{
			Search:   GetOptionalQueryParam(r, "search", ""),
			Category: domain.PantryCategory(GetOptionalQueryParam(r, "category", "")),
			Limit:    limit,
			Cursor:   GetOptionalQueryParam(r, "cursor", ""),
		})
		if err != nil {
			respondServiceError(w, r, "List pantry", err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleCreatePantry adds items to the caller's pantry
// @Summary Add pantry items
// @Description Creates 1..100 items. Repeating a request with the same Idempotency-Key returns the first response.
// @Tags pantry
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client idempotency key"
// @Param request body CreatePantryRequest true "Items"
// @Success 201 {object} PantryItemsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/pantry [post]
// @Security BearerAuth
func HandleCreatePantry(svc pantry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CreatePantryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create pantry items"); err != nil {
			return
		}

		items, err := svc.Create(r.Context(), userID, req.Items, r.Header.Get(HeaderIdempotencyKey))
		if err != nil {
			respondServiceError(w, r, "Create pantry items", err)
			return
		}

		logger.FromContext(r.Context()).Info("Pantry items created", "user_id", userID, "count", len(items))
		respondJSON(w, http.StatusCreated, PantryItemsResponse{Items: items})
	}
}

// HandleGetPantryItem returns one pantry item
// @Summary Get pantry item
// @Tags pantry
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} domain.PantryItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pantry/{id} [get]
// @Security BearerAuth
func HandleGetPantryItem(svc pantry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		item, err := svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get pantry item", err)
			return
		}

		respondVersioned(w, http.StatusOK, item.Version, item)
	}
}

// HandlePatchPantryItem partially updates a pantry item
// @Summary Update pantry item fields
// @Tags pantry
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param If-Match header int false "Expected version"
// @Param request body PatchPantryRequest true "Fields to change"
// @Success 200 {object} domain.PantryItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/pantry/{id} [patch]
// @Security BearerAuth
func HandlePatchPantryItem(svc pantry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		ifMatch, ok := parseIfMatch(r, w)
		if !ok {
			return
		}

		var req PatchPantryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Patch pantry item"); err != nil {
			return
		}

		id := chi.URLParam(r, "id")
		item, err := svc.Patch(r.Context(), userID, id, req.toPatch(), ifMatch)
		if err != nil {
			respondServiceError(w, r, "Patch pantry item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Pantry item updated", "item_id", id, "version", item.Version)
		respondVersioned(w, http.StatusOK, item.Version, item)
	}
}

// HandleReplacePantryItem replaces a pantry item
// @Summary Replace pantry item
// @Tags pantry
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param If-Match header int true "Expected version"
// @Param request body pantry.NewItem true "Full item"
// @Success 200 {object} domain.PantryItem
// @Failure 409 {object} ErrorResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/pantry/{id} [put]
// @Security BearerAuth
func HandleReplacePantryItem(svc pantry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		ifMatch, ok := parseIfMatch(r, w)
		if !ok {
			return
		}
		if ifMatch == nil {
			respondError(w, http.StatusPreconditionRequired, ErrMsgIfMatchRequired)
			return
		}

		var req pantry.NewItem
		if err := DecodeAndValidateRequest(r, w, &req, "Replace pantry item"); err != nil {
			return
		}

		id := chi.URLParam(r, "id")
		item, err := svc.Replace(r.Context(), userID, id, req, *ifMatch)
		if err != nil {
			respondServiceError(w, r, "Replace pantry item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Pantry item replaced", "item_id", id, "version", item.Version)
		respondVersioned(w, http.StatusOK, item.Version, item)
	}
}

// HandleDeletePantryItem removes a pantry item
// @Summary Delete pantry item
// @Tags pantry
// @Param id path string true "Item id"
// @Param If-Match header int false "Expected version"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/pantry/{id} [delete]
// @Security BearerAuth
func HandleDeletePantryItem(svc pantry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		ifMatch, ok := parseIfMatch(r, w)
		if !ok {
			return
		}

		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), userID, id, ifMatch); err != nil {
			respondServiceError(w, r, "Delete pantry item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Pantry item deleted", "item_id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
