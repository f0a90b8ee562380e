package middlewarectx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/tastetrail/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

type RoleProviderMock struct {
	mock.Mock
}

func (m *RoleProviderMock) RoleByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		ctxEmail       string
		storedRole     string
		storeErr       error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "admin passes",
			ctxEmail:       "admin@example.com",
			storedRole:     "admin",
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			// Роль берётся из хранилища: даже если в токене admin,
			// пониженный до user пользователь получает 403.
			name:           "stored role user is rejected",
			ctxEmail:       "downgraded@example.com",
			storedRole:     "user",
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "no email in context fails closed",
			ctxEmail:       "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "user disappeared from storage",
			ctxEmail:       "ghost@example.com",
			storeErr:       storage.ErrNotFound,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "storage failure",
			ctxEmail:       "admin@example.com",
			storeErr:       errors.New("connection refused"),
			wantStatusCode: http.StatusInternalServerError,
			wantCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := new(RoleProviderMock)
			if tt.ctxEmail != "" {
				roles.On("RoleByEmail", mock.Anything, tt.ctxEmail).
					Return(tt.storedRole, tt.storeErr).Once()
			}

			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.AdminOnlyMiddleware(logger, roles)(nextHandler)

			req := httptest.NewRequest(http.MethodPost, "/admin/recipes", nil)
			if tt.ctxEmail != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.Email, tt.ctxEmail)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}
