package middleware

import (
	"net/http"

	"github.com/osse101/Despensa_Go/internal/auth"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/metrics"
)

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Track wraps a write handler and records the action once it has run.
// Requests without an authenticated user are passed through untracked.
func Track(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			// Call the actual handler first
			next.ServeHTTP(rec, r)

			userID, ok := auth.UserIDFromContext(r.Context())
			if !ok || userID == EmptyUserID {
				return
			}

			outcome := Outcome(rec.status)
			metrics.UserActionsTotal.WithLabelValues(action, outcome).Inc()
			logger.FromContext(r.Context()).Debug(LogMsgUserAction,
				"user_id", userID,
				"action", action,
				"status", rec.status,
				"outcome", outcome)
		})
	}
}

// Outcome buckets a status code into a metric label value
func Outcome(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return OutcomeServerError
	case status >= http.StatusBadRequest:
		return OutcomeRejected
	default:
		return OutcomeSuccess
	}
}
