package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/pantry"
	"github.com/osse101/Despensa_Go/mocks"
)

func TestHandleListPantry(t *testing.T) {
	svc := mocks.NewMockPantryService(t)
	svc.EXPECT().List(mock.Anything, testUserID, pantry.ListFilter{
		Search: "tom", Category: domain.PantryCategoryVegetables, Limit: 5, Cursor: "abc",
	}).Return(&domain.PantryPage{
		Items:      []domain.PantryItem{{ID: "a", Name: "Tomate", Version: 1}},
		NextCursor: "next",
	}, nil)

	w := serve(t, "GET", "/api/v1/pantry", "/api/v1/pantry?search=tom&category=verduras&limit=5&cursor=abc",
		HandleListPantry(svc), "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nextCursor":"next"`)
	assert.Contains(t, w.Body.String(), `"name":"Tomate"`)
}

func TestHandleListPantry_InvalidLimit(t *testing.T) {
	svc := mocks.NewMockPantryService(t)

	w := serve(t, "GET", "/api/v1/pantry", "/api/v1/pantry?limit=many", HandleListPantry(svc), "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
}

func TestHandleCreatePantry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		headers        map[string]string
		setupMock      func(*mocks.MockPantryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success with idempotency key",
			body:    `{"items":[{"name":"Arroz","quantity":500,"unit":"g"}]}`,
			headers: map[string]string{HeaderIdempotencyKey: "k1"},
			setupMock: func(m *mocks.MockPantryService) {
				m.EXPECT().Create(mock.Anything, testUserID, []pantry.NewItem{{Name: "Arroz", Quantity: 500, Unit: "g"}}, "k1").
					Return([]domain.PantryItem{{ID: "id-1", Name: "Arroz", Quantity: 500, Unit: domain.UnitGram, Version: 1}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"id-1"`,
		},
		{
			name:           "Empty items",
			body:           `{"items":[]}`,
			setupMock:      func(m *mocks.MockPantryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"items":"Must be at least 1"`,
		},
		{
			name:           "Item missing unit",
			body:           `{"items":[{"name":"Arroz","quantity":1}]}`,
			setupMock:      func(m *mocks.MockPantryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Malformed JSON",
			body:           `{"items":`,
			setupMock:      func(m *mocks.MockPantryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Unknown unit",
			body: `{"items":[{"name":"Trigo","quantity":1,"unit":"fanega"}]}`,
			setupMock: func(m *mocks.MockPantryService) {
				m.EXPECT().Create(mock.Anything, testUserID, mock.Anything, "").Return(nil, domain.ErrUnknownUnit)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnknownUnitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPantryService(t)
			tt.setupMock(svc)

			w := serve(t, "POST", "/api/v1/pantry", "/api/v1/pantry", HandleCreatePantry(svc), tt.body, tt.headers)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetPantryItem(t *testing.T) {
	svc := mocks.NewMockPantryService(t)
	svc.EXPECT().Get(mock.Anything, testUserID, "id-1").Return(&domain.PantryItem{ID: "id-1", Version: 4}, nil)
	svc.EXPECT().Get(mock.Anything, testUserID, "missing").Return(nil, domain.ErrPantryItemNotFound)

	w := serve(t, "GET", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandleGetPantryItem(svc), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"4"`, w.Header().Get(HeaderETag))

	w = serve(t, "GET", "/api/v1/pantry/{id}", "/api/v1/pantry/missing", HandleGetPantryItem(svc), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
}

func TestHandlePatchPantryItem(t *testing.T) {
	t.Run("Null notes clears them", func(t *testing.T) {
		svc := mocks.NewMockPantryService(t)
		qty := 2.5
		svc.EXPECT().Patch(mock.Anything, testUserID, "id-1", pantry.ItemPatch{Quantity: &qty, ClearNotes: true}, intPtr(3)).
			Return(&domain.PantryItem{ID: "id-1", Quantity: 2.5, Version: 4}, nil)

		w := serve(t, "PATCH", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandlePatchPantryItem(svc),
			`{"quantity":2.5,"notes":null}`, map[string]string{HeaderIfMatch: `"3"`})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"4"`, w.Header().Get(HeaderETag))
	})

	t.Run("Notes and category set", func(t *testing.T) {
		svc := mocks.NewMockPantryService(t)
		notes := "abierto"
		category := domain.PantryCategoryDairy
		svc.EXPECT().Patch(mock.Anything, testUserID, "id-1", pantry.ItemPatch{Notes: &notes, Category: &category}, (*int)(nil)).
			Return(&domain.PantryItem{ID: "id-1", Version: 2}, nil)

		w := serve(t, "PATCH", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandlePatchPantryItem(svc),
			`{"notes":"abierto","category":"lácteos"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid category", func(t *testing.T) {
		svc := mocks.NewMockPantryService(t)

		w := serve(t, "PATCH", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandlePatchPantryItem(svc),
			`{"category":"snacks"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"category":"Invalid category"`)
	})

	t.Run("Version conflict", func(t *testing.T) {
		svc := mocks.NewMockPantryService(t)
		svc.EXPECT().Patch(mock.Anything, testUserID, "id-1", mock.Anything, intPtr(1)).
			Return(nil, domain.ErrConcurrencyConflict)

		w := serve(t, "PATCH", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandlePatchPantryItem(svc),
			`{"quantity":1}`, map[string]string{HeaderIfMatch: "1"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgConflictError)
	})
}

func TestHandleReplacePantryItem(t *testing.T) {
	body := `{"name":"Leche","quantity":1,"unit":"l","category":"lácteos"}`

	t.Run("If-Match required", func(t *testing.T) {
		svc := mocks.NewMockPantryService(t)

		w := serve(t, "PUT", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandleReplacePantryItem(svc), body, nil)

		assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockPantryService(t)
		svc.EXPECT().Replace(mock.Anything, testUserID, "id-1", pantry.NewItem{
			Name: "Leche", Quantity: 1, Unit: "l", Category: domain.PantryCategoryDairy,
		}, 2).Return(&domain.PantryItem{ID: "id-1", Version: 3}, nil)

		w := serve(t, "PUT", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandleReplacePantryItem(svc), body,
			map[string]string{HeaderIfMatch: "2"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"3"`, w.Header().Get(HeaderETag))
	})
}

func TestHandleDeletePantryItem(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		ifMatch        *int
		err            error
		expectedStatus int
	}{
		{"Deleted", nil, nil, nil, http.StatusNoContent},
		{"Deleted with version", map[string]string{HeaderIfMatch: "5"}, intPtr(5), nil, http.StatusNoContent},
		{"Missing", nil, nil, domain.ErrPantryItemNotFound, http.StatusNotFound},
		{"Stale version", map[string]string{HeaderIfMatch: "5"}, intPtr(5), domain.ErrConcurrencyConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPantryService(t)
			svc.EXPECT().Delete(mock.Anything, testUserID, "id-1", tt.ifMatch).Return(tt.err)

			w := serve(t, "DELETE", "/api/v1/pantry/{id}", "/api/v1/pantry/id-1", HandleDeletePantryItem(svc), "", tt.headers)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
