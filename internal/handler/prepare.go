package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/prepare"
)

// PrepareRequest selects the menu days to prepare
type PrepareRequest struct {
	Scope  string   `json:"scope,omitempty" validate:"preparescope"`
	Days   []string `json:"days,omitempty" validate:"omitempty,max=7,dive,daykey"`
	DryRun bool     `json:"dryRun"`
}

func (req PrepareRequest) toRequest() prepare.Request {
	days := make([]domain.DayKey, 0, len(req.Days))
	for _, d := range req.Days {
		// Already validated by the daykey tag
		day, _ := domain.ParseDayKey(d)
		days = append(days, day)
	}
	return prepare.Request{
		Scope:  domain.PrepareScope(req.Scope),
		Days:   days,
		DryRun: req.DryRun,
	}
}

// HandlePrepareMenu reconciles a menu with the pantry
// @Summary Prepare menu
// @Description Computes ingredient needs for the selected days, reports shortages and, unless dryRun, consumes pantry stock. A 409 means the pantry or menu changed and the whole preparation should be re-run.
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu id"
// @Param request body PrepareRequest false "Scope (all, weekdays, days), days and dryRun"
// @Success 200 {object} prepare.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/menus/{id}/prepare [post]
// @Security BearerAuth
func HandlePrepareMenu(svc prepare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req PrepareRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Prepare menu"); err != nil {
				return
			}
		}

		id := chi.URLParam(r, "id")
		result, err := svc.Prepare(r.Context(), userID, id, req.toRequest())
		if err != nil {
			respondServiceError(w, r, "Prepare menu", err)
			return
		}

		logger.FromContext(r.Context()).Info("Menu prepared",
			"menu_id", id,
			"scope", result.Scope,
			"prepared", result.Prepared,
			"dry_run", req.DryRun,
			"shortages", len(result.Shortages),
			"updates", len(result.PantryUpdates))
		respondJSON(w, http.StatusOK, result)
	}
}
