package handler

import (
	"net/http"
	"sort"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/naming"
)

// UnitInfo describes one canonical unit and its accepted spellings
type UnitInfo struct {
	Unit     domain.Unit         `json:"unit"`
	Category domain.UnitCategory `json:"category"`
	Aliases  []string            `json:"aliases"`
}

// UnitsResponse lists every canonical unit
type UnitsResponse struct {
	Units []UnitInfo `json:"units"`
}

// HandleListUnits lists canonical units with their configured aliases
// @Summary List units
// @Tags units
// @Produce json
// @Success 200 {object} UnitsResponse
// @Router /api/v1/units [get]
// @Security BearerAuth
func HandleListUnits(resolver naming.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aliases := resolver.Aliases()

		units := make([]UnitInfo, 0, len(domain.KnownUnits()))
		for _, u := range domain.KnownUnits() {
			list := append([]string{}, aliases[u]...)
			sort.Strings(list)
			// Known units always have a category
			category, _ := u.Category()
			units = append(units, UnitInfo{Unit: u, Category: category, Aliases: list})
		}

		respondJSON(w, http.StatusOK, UnitsResponse{Units: units})
	}
}
