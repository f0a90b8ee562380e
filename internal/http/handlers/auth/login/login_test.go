package login

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	services "github.com/magabrotheeeer/tastetrail/internal/services/auth"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockToken      string
		mockRole       string
		mockPhoto      string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantSuccess    bool
		wantMessage    string
	}{
		{
			name: "valid login",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			mockToken:      "tok",
			mockRole:       "admin",
			mockPhoto:      "https://example.com/a.png",
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantSuccess:    true,
		},
		{
			name:           "invalid json body",
			requestBody:    "{broken",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name: "validation error - bad email",
			requestBody: Request{
				Email:    "not-an-email",
				Password: "pw1234",
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Email must be a valid email",
		},
		{
			name: "unknown email",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			mockErr:        storage.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "user not found",
		},
		{
			name: "wrong password",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			mockErr:        services.ErrInvalidCredentials,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "wrong password",
		},
		{
			name: "service failure",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(AuthServiceMock)
			if tt.mockCalled {
				svc.On("Login", mock.Anything, "alice@example.com", "pw1234").
					Return(tt.mockToken, tt.mockRole, tt.mockPhoto, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), svc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantSuccess {
				assert.Equal(t, true, resp["success"])
				assert.Equal(t, tt.mockToken, resp["token"])
				assert.Equal(t, tt.mockRole, resp["role"])
				assert.Equal(t, tt.mockPhoto, resp["photo"])
			} else {
				assert.Equal(t, false, resp["success"])
				assert.Contains(t, resp["message"], tt.wantMessage)
			}

			svc.AssertExpectations(t)
		})
	}
}
