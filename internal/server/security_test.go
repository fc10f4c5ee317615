package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Despensa_Go/internal/auth"
)

type stubTokens map[string]string

func (s stubTokens) Parse(token string) (string, error) {
	if userID, ok := s[token]; ok {
		return userID, nil
	}
	return "", auth.ErrInvalidToken
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	tokens := stubTokens{"good-token": "user-7"}
	middleware := AuthMiddleware(apiKey, tokens, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
		expectedUser   string
	}{
		{"Valid bearer token", "/api/v1/pantry", map[string]string{"Authorization": "Bearer good-token"}, http.StatusOK, "user-7"},
		{"Invalid bearer token", "/api/v1/pantry", map[string]string{"Authorization": "Bearer forged"}, http.StatusUnauthorized, ""},
		{"Basic scheme", "/api/v1/pantry", map[string]string{"Authorization": "Basic Zm9vOmJhcg=="}, http.StatusUnauthorized, ""},
		{"API key with user", "/api/v1/menus", map[string]string{"X-API-Key": apiKey, "X-User-ID": "user-9"}, http.StatusOK, "user-9"},
		{"API key without user", "/api/v1/menus", map[string]string{"X-API-Key": apiKey}, http.StatusUnauthorized, ""},
		{"Wrong API key", "/api/v1/menus", map[string]string{"X-API-Key": "wrong-key", "X-User-ID": "user-9"}, http.StatusUnauthorized, ""},
		{"Missing credentials", "/api/v1/menus", nil, http.StatusUnauthorized, ""},
		{"Admin with API key", "/api/v1/admin/reload-units", map[string]string{"X-API-Key": apiKey}, http.StatusOK, ""},
		{"Admin with bearer token", "/api/v1/admin/reload-units", map[string]string{"Authorization": "Bearer good-token"}, http.StatusUnauthorized, ""},
		{"Public Path - Healthz", "/healthz", nil, http.StatusOK, ""},
		{"Public Path - Metrics", "/metrics", nil, http.StatusOK, ""},
		{"Public Path - Version", "/version", nil, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			var gotUser string
			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = auth.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
		})
	}
}

func TestAuthMiddleware_NoAPIKeyConfigured(t *testing.T) {
	middleware := AuthMiddleware("", nil, nil, NewSuspiciousActivityDetector())
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/pantry", nil)
	req.Header.Set("X-API-Key", "")
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSuspiciousActivityDetector_CountsPerClient(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 1; i <= FailedAuthAlertThreshold; i++ {
		assert.Equal(t, i, detector.RecordFailedAuth("10.0.0.1"))
	}
	assert.Equal(t, 1, detector.RecordFailedAuth("10.0.0.2"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		for err == nil {
			_, err = r.Body.Read(buf)
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/v1/pantry", strings.NewReader("0123456789abcdef"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req = httptest.NewRequest("POST", "/api/v1/pantry", strings.NewReader("0123"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"untrusted proxy ignored", "203.0.113.5:4000", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy rightmost hop", "10.0.0.1:4000", "198.51.100.1, 192.0.2.9", []string{"10.0.0.1"}, "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
