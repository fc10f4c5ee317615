package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/Despensa_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreatePantryRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create pantry items"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	cursor := GetOptionalQueryParam(r, "cursor", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getQueryLimit parses the limit query parameter. Zero means "use the default".
// If ok is false, the HTTP response has already been written.
func getQueryLimit(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// parseIfMatch reads the If-Match header as an integer version. Quoted and
// weak forms (3, "3", W/"3") are accepted. A nil result means the header was absent.
// If ok is false, the HTTP response has already been written.
func parseIfMatch(r *http.Request, w http.ResponseWriter) (*int, bool) {
	raw := strings.TrimSpace(r.Header.Get(HeaderIfMatch))
	if raw == "" {
		return nil, true
	}
	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)

	version, err := strconv.Atoi(raw)
	if err != nil || version < 1 {
		logger.FromContext(r.Context()).Warn("Invalid If-Match header", "value", r.Header.Get(HeaderIfMatch))
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIfMatch)
		return nil, false
	}
	return &version, true
}

// LogRequestFields is a helper to log common request fields in a structured way.
//
// Example usage:
//
//	LogRequestFields(log, "menu_id", id, "day", day)
func LogRequestFields(log *slog.Logger, keyvals ...any) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
