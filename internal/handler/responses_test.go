package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Despensa_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"menu not found", domain.ErrMenuNotFound, http.StatusNotFound, ErrMsgMenuNotFoundError},
		{"item not found wrapped", fmt.Errorf("%w: id=x", domain.ErrPantryItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"finalized", domain.ErrMenuFinalized, http.StatusConflict, ErrMsgMenuFinalizedError},
		{"conflict", fmt.Errorf("failed to apply plan: %w", domain.ErrConcurrencyConflict), http.StatusConflict, ErrMsgConflictError},
		{"unknown unit", fmt.Errorf("%w: %q", domain.ErrUnknownUnit, "fanega"), http.StatusBadRequest, ErrMsgUnknownUnitError},
		{"empty selection", domain.ErrEmptyDaySelection, http.StatusBadRequest, ErrMsgEmptyDaysError},
		{"invalid day", domain.ErrInvalidDay, http.StatusBadRequest, ErrMsgInvalidDayError},
		{"invalid scope", domain.ErrInvalidScope, http.StatusBadRequest, ErrMsgInvalidScopeError},
		{"invalid cursor", domain.ErrInvalidCursor, http.StatusBadRequest, ErrMsgInvalidCursorError},
		{"no fields", domain.ErrNoFieldsToUpdate, http.StatusBadRequest, ErrMsgNoFieldsError},
		{"too many", domain.ErrTooManyItems, http.StatusBadRequest, ErrMsgTooManyItemsError},
		{"category", domain.ErrInvalidCategory, http.StatusBadRequest, ErrMsgInvalidCategoryErr},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"storage failure", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestConflictMessageMatchesDomain(t *testing.T) {
	assert.Equal(t, "Changed by another process, refresh and retry", ErrMsgConflictError)
}

func TestParseIfMatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   *int
		ok     bool
	}{
		{"absent", "", nil, true},
		{"bare", "3", intPtr(3), true},
		{"quoted", `"3"`, intPtr(3), true},
		{"weak", `W/"12"`, intPtr(12), true},
		{"not a number", `"abc"`, nil, false},
		{"zero", "0", nil, false},
		{"star", "*", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderIfMatch, tt.header)
			}
			w := httptest.NewRecorder()

			got, ok := parseIfMatch(req, w)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestRequireUser_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/pantry", nil)
	w := httptest.NewRecorder()

	_, ok := requireUser(w, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
