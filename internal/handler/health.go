package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/Despensa_Go/internal/database"
	"github.com/osse101/Despensa_Go/internal/logger"
)

// ReadinessTimeout bounds the store ping of the readiness probe
const ReadinessTimeout = 2 * time.Second

// Probe states
const (
	ProbeOK          = "ok"
	ProbeUnavailable = "unavailable"
)

// ProbeResponse is the body of the liveness and readiness probes
type ProbeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz reports that the process is serving
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} ProbeResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ProbeResponse{Status: ProbeOK})
	}
}

// HandleReadyz reports whether the store answers a ping
// @Summary Readiness probe
// @Description 503 while the pantry and menu store is unreachable
// @Tags health
// @Produce json
// @Success 200 {object} ProbeResponse
// @Failure 503 {object} ProbeResponse
// @Router /readyz [get]
func HandleReadyz(store database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		err := store.Ping(ctx)
		cancel()

		if err == nil {
			respondJSON(w, http.StatusOK, ProbeResponse{Status: ProbeOK})
			return
		}

		logger.FromContext(r.Context()).Warn("Store not ready", "error", err)
		respondJSON(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:  ProbeUnavailable,
			Message: "database connection failed",
		})
	}
}
