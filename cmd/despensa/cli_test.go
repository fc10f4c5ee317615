package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Despensa_Go/internal/auth"
	"github.com/osse101/Despensa_Go/internal/client"
	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/handler"
	"github.com/osse101/Despensa_Go/internal/prepare"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DESPENSA_API_URL", "DESPENSA_TOKEN", "DESPENSA_API_KEY", "DESPENSA_USER"} {
		t.Setenv(k, "")
	}
}

// runCLI executes the root command with a throwaway profile
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--profile", filepath.Join(t.TempDir(), "profile.json")}, args...))

	err := root.Execute()
	return out.String(), err
}

func fakeAPI(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestBuildPrepareRequest(t *testing.T) {
	tests := []struct {
		name    string
		scope   string
		days    []string
		want    prepare.Request
		wantErr error
	}{
		{"default scope", "", nil, prepare.Request{Scope: domain.PrepareScopeAll}, nil},
		{"weekdays", "weekdays", nil, prepare.Request{Scope: domain.PrepareScopeWeekdays}, nil},
		{"days imply scope", "", []string{"mon", "WED"}, prepare.Request{Scope: domain.PrepareScopeDays, Days: []domain.DayKey{domain.DayMonday, domain.DayWednesday}}, nil},
		{"days scope without days", "days", nil, prepare.Request{}, domain.ErrEmptyDaySelection},
		{"bad day", "days", []string{"lunes"}, prepare.Request{}, domain.ErrInvalidDay},
		{"bad scope", "weekend", nil, prepare.Request{}, domain.ErrInvalidScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPrepareRequest(tt.scope, tt.days, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareCmd_DryRunShowsShortages(t *testing.T) {
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/menus/m1/prepare", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req prepare.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.DryRun)
		assert.Equal(t, domain.PrepareScopeDays, req.Scope)

		have := domain.Quantity{Quantity: 100, Unit: domain.UnitGram}
		writeJSON(w, http.StatusOK, prepare.Result{
			Scope: domain.PrepareScopeDays,
			Days:  []domain.DayKey{domain.DayMonday},
			Shortages: []domain.Shortage{{
				Name:      "arroz",
				Required:  domain.Quantity{Quantity: 300, Unit: domain.UnitGram},
				Available: &have,
				Missing:   domain.Quantity{Quantity: 200, Unit: domain.UnitGram},
				Reason:    domain.ShortageInsufficient,
			}},
			Menu: prepare.MenuState{ID: "m1", Version: 4},
		})
	})

	out, err := runCLI(t, "--api-url", url, "--token", "tok", "prepare", "m1", "--days", "mon", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run. Some ingredients are short.")
	assert.Contains(t, out, "arroz")
	assert.Contains(t, out, "300 g")
	assert.Contains(t, out, "insufficient")
	assert.Contains(t, out, "menu version 4")
}

func TestPrepareCmd_ConflictMessage(t *testing.T) {
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, handler.ErrorResponse{Error: "Changed by another process, refresh and retry"})
	})

	_, err := runCLI(t, "--api-url", url, "--token", "tok", "prepare", "m1")
	require.Error(t, err)
	assert.True(t, client.IsConflict(err))
	assert.Contains(t, renderError(err), ConflictMessage)
}

func TestPrepareCmd_InvalidFlagsNeverCallAPI(t *testing.T) {
	var calls atomic.Int32
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := runCLI(t, "--api-url", url, "prepare", "m1", "--days", "funday")
	assert.ErrorIs(t, err, domain.ErrInvalidDay)
	assert.Zero(t, calls.Load())
}

func TestPantryAddCmd(t *testing.T) {
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get(handler.HeaderIdempotencyKey))
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, "user-9", r.Header.Get("X-User-ID"))

		var req handler.CreatePantryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "leche entera", req.Items[0].Name)
		assert.Equal(t, 2.5, req.Items[0].Quantity)
		assert.Equal(t, "l", req.Items[0].Unit)
		assert.True(t, req.Items[0].Perishable)

		writeJSON(w, http.StatusCreated, handler.PantryItemsResponse{Items: []domain.PantryItem{{
			ID: "p1", Name: "leche entera", Quantity: 2.5, Unit: domain.UnitLiter,
			Category: domain.PantryCategoryDairy, Perishable: true, Version: 1,
		}}})
	})

	out, err := runCLI(t, "--api-url", url, "--api-key", "secret", "--user", "user-9",
		"pantry", "add", "leche entera", "2.5", "l", "--perishable")
	require.NoError(t, err)
	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "2.5 l")
}

func TestPantryAddCmd_RejectsBadQuantity(t *testing.T) {
	_, err := runCLI(t, "pantry", "add", "arroz", "mucho", "kg")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPantryListCmd_Empty(t *testing.T) {
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tom", r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, domain.PantryPage{Items: []domain.PantryItem{}})
	})

	out, err := runCLI(t, "--api-url", url, "--token", "tok", "pantry", "list", "--search", "tom")
	require.NoError(t, err)
	assert.Contains(t, out, "Pantry is empty.")
}

func TestMenuShowCmd_FetchesEveryMenu(t *testing.T) {
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/menus/")
		writeJSON(w, http.StatusOK, domain.Menu{
			ID: id, WeekStart: "2026-03-02", Persons: 2, Scope: domain.MenuScopeCustom, Status: domain.MenuStatusDraft, Version: 1,
			Days: map[domain.DayKey]domain.Recipe{
				domain.DayTuesday: {Title: "Arroz con leche " + id, Ingredients: []domain.RecipeIngredient{
					{Name: "arroz", Quantity: 200, Unit: domain.UnitGram},
				}},
			},
		})
	})

	out, err := runCLI(t, "--api-url", url, "--token", "tok", "menu", "show", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "Menu a")
	assert.Contains(t, out, "Menu b")
	assert.Contains(t, out, "Arroz con leche b")
	assert.Contains(t, out, "200 g arroz")
	assert.Less(t, strings.Index(out, "Menu a"), strings.Index(out, "Menu b"))
}

func TestTokenCmd_SavesProfile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_ISSUER", "despensa-test")
	profilePath := filepath.Join(t.TempDir(), "profile.json")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--profile", profilePath, "--api-url", "http://api.local", "token", "user-3", "--save"})
	require.NoError(t, root.Execute())

	token := strings.TrimSpace(out.String())
	userID, err := auth.NewTokenManager(testSecret, "despensa-test", 0).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-3", userID)

	p, err := loadProfile(profilePath)
	require.NoError(t, err)
	assert.Equal(t, profile{BaseURL: "http://api.local", UserID: "user-3", Token: token}, p)
}

func TestTokenCmd_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := runCLI(t, "token", "user-3")
	assert.ErrorIs(t, err, errNoJWTSecret)
}

func TestMigrateCmd_SQLite(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "despensa.db"))

	out, err := runCLI(t, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied")

	out, err = runCLI(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "applied")
	assert.NotContains(t, out, "pending")
}

func TestRenderError_ValidationFields(t *testing.T) {
	err := &client.APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Fields:     map[string]string{"items[0].unit": "This field is required", "items[0].name": "This field is required"},
	}
	out := renderError(err)
	assert.Contains(t, out, "Validation failed")
	assert.Less(t, strings.Index(out, "items[0].name"), strings.Index(out, "items[0].unit"))
}

func TestAPIClient_UsesSavedProfile(t *testing.T) {
	clearEnv(t)
	url := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer saved", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, handler.UnitsResponse{Units: []handler.UnitInfo{}})
	})

	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, saveProfile(path, profile{BaseURL: url, Token: "saved"}))

	opts := &globalOptions{profilePath: path}
	c, err := opts.apiClient()
	require.NoError(t, err)
	_, err = c.ListUnits(t.Context())
	require.NoError(t, err)
}
