package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/osse101/Despensa_Go/internal/auth"
	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// maxPooledBuffer keeps large listing responses from pinning memory in the pool
const maxPooledBuffer = 64 << 10

var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := responseBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			buf.Reset()
			responseBuffers.Put(buf)
		}
	}()

	// Encode before writing headers so an encoding failure can still be a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondVersioned sends payload with an ETag carrying the record version
func respondVersioned(w http.ResponseWriter, status int, version int, payload any) {
	w.Header().Set(HeaderETag, strconv.Quote(strconv.Itoa(version)))
	respondJSON(w, status, payload)
}

// respondServiceError logs a failed service call and maps it to a response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// requireUser returns the authenticated user id or writes a 401
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return "", false
	}
	return userID, true
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgMenuNotFoundError   = "Menu not found"
	ErrMsgItemNotFoundError   = "Pantry item not found"
	ErrMsgMenuFinalizedError  = "Menu is finalized and can no longer be changed"
	ErrMsgConflictError       = "Changed by another process, refresh and retry"
	ErrMsgUnknownUnitError    = "Unknown unit"
	ErrMsgEmptyDaysError      = "Select at least one day"
	ErrMsgInvalidDayError     = "Invalid day, use mon..sun"
	ErrMsgInvalidScopeError   = "Invalid scope, use all, weekdays or days"
	ErrMsgNoFieldsError       = "Nothing to update"
	ErrMsgTooManyItemsError   = "Too many items in one request"
	ErrMsgInvalidCategoryErr  = "Invalid category"
	ErrMsgInvalidCursorError  = "Invalid cursor"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgIncompatibleUnitErr = "Incompatible units"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMenuNotFound):
		return http.StatusNotFound, ErrMsgMenuNotFoundError
	case errors.Is(err, domain.ErrPantryItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrMenuFinalized):
		return http.StatusConflict, ErrMsgMenuFinalizedError
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, ErrMsgUnknownUnitError
	case errors.Is(err, domain.ErrIncompatibleUnits):
		return http.StatusBadRequest, ErrMsgIncompatibleUnitErr
	case errors.Is(err, domain.ErrEmptyDaySelection):
		return http.StatusBadRequest, ErrMsgEmptyDaysError
	case errors.Is(err, domain.ErrInvalidDay):
		return http.StatusBadRequest, ErrMsgInvalidDayError
	case errors.Is(err, domain.ErrInvalidScope):
		return http.StatusBadRequest, ErrMsgInvalidScopeError
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, ErrMsgNoFieldsError
	case errors.Is(err, domain.ErrTooManyItems):
		return http.StatusBadRequest, ErrMsgTooManyItemsError
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, ErrMsgInvalidCategoryErr
	case errors.Is(err, domain.ErrInvalidCursor):
		return http.StatusBadRequest, ErrMsgInvalidCursorError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
