package create

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

	"github.com/magabrotheeeer/tastetrail/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

type ReviewServiceMock struct {
	mock.Mock
}

func (m *ReviewServiceMock) Create(ctx context.Context, recipeID, authorEmail string, rating int, comment string) (string, error) {
	args := m.Called(ctx, recipeID, authorEmail, rating, comment)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateReviewHandler_ServeHTTP(t *testing.T) {
	const recipeID = "8e9f6c1a-1111-4222-8333-444455556666"

	tests := []struct {
		name           string
		ctxEmail       any
		body           string
		mockID         string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "creates review for token owner",
			ctxEmail:       "alice@example.com",
			body:           `{"rating":5,"comment":"tasty"}`,
			mockID:         "review-id",
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no email in context",
			ctxEmail:       nil,
			body:           `{"rating":5}`,
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "unauthorized",
		},
		{
			name:           "invalid json body",
			ctxEmail:       "alice@example.com",
			body:           "{broken",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "rating out of range",
			ctxEmail:       "alice@example.com",
			body:           `{"rating":7}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Rating",
		},
		{
			name:           "unknown recipe",
			ctxEmail:       "alice@example.com",
			body:           `{"rating":5,"comment":"tasty"}`,
			mockErr:        storage.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "recipe not found",
		},
		{
			name:           "storage failure",
			ctxEmail:       "alice@example.com",
			body:           `{"rating":5,"comment":"tasty"}`,
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to create review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ReviewServiceMock)
			if tt.mockCalled {
				svc.On("Create", mock.Anything, recipeID, "alice@example.com", 5, mock.Anything).
					Return(tt.mockID, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), svc)

			router := chi.NewRouter()
			router.Post("/recipes/{id}/reviews", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodPost, "/recipes/"+recipeID+"/reviews", bytes.NewBufferString(tt.body))
			if tt.ctxEmail != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.Email, tt.ctxEmail)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, true, resp["success"])
				assert.Equal(t, tt.mockID, resp["reviewId"])
			} else {
				assert.Equal(t, false, resp["success"])
				assert.Contains(t, resp["message"], tt.wantMessage)
			}

			svc.AssertExpectations(t)
		})
	}
}
