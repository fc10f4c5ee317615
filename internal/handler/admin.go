package handler

import (
	"net/http"

	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/naming"
)

// ReloadUnitsResponse confirms a unit alias reload
type ReloadUnitsResponse struct {
	Message string `json:"message"`
	Aliases int    `json:"aliases"`
}

// HandleReloadUnits reloads the unit alias configuration (admin only)
// @Summary Reload unit aliases
// @Description Re-reads the unit alias YAML. On failure the previous aliases stay active.
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadUnitsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload-units [post]
// @Security ApiKeyAuth
func HandleReloadUnits(resolver naming.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		log.Info("Reloading unit alias configuration")

		if err := resolver.Reload(); err != nil {
			log.Error("Failed to reload unit aliases", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadUnitsFailed)
			return
		}

		count := 0
		for _, list := range resolver.Aliases() {
			count += len(list)
		}

		log.Info("Unit aliases reloaded successfully", "aliases", count)
		respondJSON(w, http.StatusOK, ReloadUnitsResponse{Message: MsgUnitsReloadedSuccess, Aliases: count})
	}
}
