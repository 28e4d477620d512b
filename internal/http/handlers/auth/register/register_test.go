package register

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/stock-api/internal/storage/repository"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUID        string
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantError      string
		wantFieldErr   string
	}{
		{
			name:           "successful registration",
			requestBody:    Request{Email: "a@x.com", Password: "Secret1!"},
			mockUID:        "some-uuid",
			wantStatusCode: http.StatusOK,
			wantMessage:    "user registered successfully",
		},
		{
			name:           "duplicate email",
			requestBody:    Request{Email: "a@x.com", Password: "Secret1!"},
			mockErr:        repository.ErrUserAlreadyExists,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "email is already registered",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "validation error - malformed email",
			requestBody:    Request{Email: "not-an-email", Password: "Secret1!"},
			wantStatusCode: http.StatusBadRequest,
			wantFieldErr:   "Email",
		},
		{
			name:           "validation error - short password",
			requestBody:    Request{Email: "a@x.com", Password: "short"},
			wantStatusCode: http.StatusBadRequest,
			wantFieldErr:   "Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockUID != "" || tt.mockErr != nil {
				req := tt.requestBody.(Request)
				authMock.On("Register", mock.Anything, req.Email, req.Password).
					Return(tt.mockUID, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			switch {
			case tt.wantMessage != "":
				var got map[string]any
				err = json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.wantMessage, data["message"])
			case tt.wantFieldErr != "":
				var got map[string][]string
				err = json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Contains(t, got, tt.wantFieldErr)
			default:
				var got map[string]any
				err = json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
