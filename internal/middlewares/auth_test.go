package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, auth *MockSessionAuthenticator)
		expectedStatus   int
		expectedLocation string
		expectNextCalled bool
	}{
		{
			name: "NoCookie",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no cookie"))
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name: "SessionNotFound",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return("", services.ErrSessionNotFound)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name: "StoreError",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return("", errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "LiveSession",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return("42", nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockAuth := NewMockSessionAuthenticator(ctrl)
			tt.mockSetup(mockTokener, mockAuth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userID, ok := models.GetUserID(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "42", userID)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/settings", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestIdentityMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(tok *MockTokener, auth *MockSessionAuthenticator)
		wantUserID string
	}{
		{
			name: "Anonymous",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no cookie"))
			},
		},
		{
			name: "StaleSession",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("stale", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "stale").
					Return("", services.ErrSessionNotFound)
			},
		},
		{
			name: "StoreErrorServedAnonymously",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "token").
					Return("", errors.New("redis down"))
			},
		},
		{
			name: "LiveSession",
			mockSetup: func(tok *MockTokener, auth *MockSessionAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "token").
					Return("42", nil)
			},
			wantUserID: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockAuth := NewMockSessionAuthenticator(ctrl)
			tt.mockSetup(mockTokener, mockAuth)

			var gotUserID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = models.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := IdentityMiddleware(mockTokener, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}
