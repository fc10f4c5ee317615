package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/menu"
)

// HandleListMenus lists the caller's menus, newest first
// @Summary List menus
// @Tags menus
// @Produce json
// @Param limit query int false "Page size"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} domain.MenuPage
// @Router /api/v1/menus [get]
// @Security BearerAuth
func HandleListMenus(svc menu.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		limit, ok := getQueryLimit(r, w)
		if !ok {
			return
		}

		page, err := svc.List(r.Context(), userID, limit, GetOptionalQueryParam(r, "cursor", ""))
		if err != nil {
			respondServiceError(w, r, "List menus", err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleCreateMenu stores a weekly menu with its chosen recipes
// @Summary Create menu
// @Tags menus
// @Accept json
// @Produce json
// @Param request body menu.NewMenu true "Menu"
// @Success 201 {object} domain.Menu
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/menus [post]
// @Security BearerAuth
func HandleCreateMenu(svc menu.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req menu.NewMenu
		if err := DecodeAndValidateRequest(r, w, &req, "Create menu"); err != nil {
			return
		}

		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			respondServiceError(w, r, "Create menu", err)
			return
		}

		logger.FromContext(r.Context()).Info("Menu created", "menu_id", created.ID, "scope", created.Scope)
		respondVersioned(w, http.StatusCreated, created.Version, created)
	}
}

// HandleGetMenu returns one menu
// @Summary Get menu
// @Tags menus
// @Produce json
// @Param id path string true "Menu id"
// @Success 200 {object} domain.Menu
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/menus/{id} [get]
// @Security BearerAuth
func HandleGetMenu(svc menu.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		m, err := svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get menu", err)
			return
		}

		respondVersioned(w, http.StatusOK, m.Version, m)
	}
}

// HandleReplaceRecipe swaps the recipe planned for one day
// @Summary Replace a day's recipe
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu id"
// @Param day path string true "Day key (mon..sun)"
// @Param If-Match header int false "Expected menu version"
// @Param request body domain.Recipe true "Recipe"
// @Success 200 {object} domain.Menu
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/menus/{id}/days/{day} [put]
// @Security BearerAuth
func HandleReplaceRecipe(svc menu.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		ifMatch, ok := parseIfMatch(r, w)
		if !ok {
			return
		}

		day, err := domain.ParseDayKey(chi.URLParam(r, "day"))
		if err != nil {
			respondServiceError(w, r, "Replace recipe", err)
			return
		}

		var recipe domain.Recipe
		if err := DecodeAndValidateRequest(r, w, &recipe, "Replace recipe"); err != nil {
			return
		}

		id := chi.URLParam(r, "id")
		updated, err := svc.ReplaceRecipe(r.Context(), userID, id, day, recipe, ifMatch)
		if err != nil {
			respondServiceError(w, r, "Replace recipe", err)
			return
		}

		logger.FromContext(r.Context()).Info("Recipe replaced", "menu_id", id, "day", day, "version", updated.Version)
		respondVersioned(w, http.StatusOK, updated.Version, updated)
	}
}

// HandleFinalizeMenu locks a menu against recipe changes
// @Summary Finalize menu
// @Tags menus
// @Produce json
// @Param id path string true "Menu id"
// @Param If-Match header int false "Expected menu version"
// @Success 200 {object} domain.Menu
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/menus/{id}/finalize [post]
// @Security BearerAuth
func HandleFinalizeMenu(svc menu.Service) http.HandlerFunc {
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
		finalized, err := svc.Finalize(r.Context(), userID, id, ifMatch)
		if err != nil {
			respondServiceError(w, r, "Finalize menu", err)
			return
		}

		logger.FromContext(r.Context()).Info("Menu finalized", "menu_id", id, "version", finalized.Version)
		respondVersioned(w, http.StatusOK, finalized.Version, finalized)
	}
}
