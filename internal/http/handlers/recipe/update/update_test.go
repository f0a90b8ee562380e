package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

type RecipeServiceMock struct {
	mock.Mock
}

func (m *RecipeServiceMock) Update(ctx context.Context, id string, data map[string]any) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	const recipeID = "8e9f6c1a-1111-4222-8333-444455556666"

	tests := []struct {
		name           string
		body           string
		mockData       map[string]any
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "partial update",
			body:           `{"title":"Borscht","servings":4}`,
			mockData:       map[string]any{"title": "Borscht", "servings": float64(4)},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json body",
			body:           "{broken",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "empty update document",
			body:           `{}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "update document is empty",
		},
		{
			name:           "unknown recipe id",
			body:           `{"title":"Borscht"}`,
			mockData:       map[string]any{"title": "Borscht"},
			mockErr:        storage.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "recipe not found",
		},
		{
			name:           "storage failure",
			body:           `{"title":"Borscht"}`,
			mockData:       map[string]any{"title": "Borscht"},
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to update recipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(RecipeServiceMock)
			if tt.mockCalled {
				svc.On("Update", mock.Anything, recipeID, tt.mockData).
					Return(tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), svc)

			router := chi.NewRouter()
			router.Put("/admin/recipes/{id}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodPut, "/admin/recipes/"+recipeID, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, true, resp["success"])
			} else {
				assert.Equal(t, false, resp["success"])
				assert.Contains(t, resp["message"], tt.wantMessage)
			}

			svc.AssertExpectations(t)
		})
	}
}
