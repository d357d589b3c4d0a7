package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginStarter(ctrl)

	t.Run("redirects to github", func(t *testing.T) {
		mockSvc.EXPECT().BeginLogin(gomock.Any()).Return("https://github.com/login/oauth/authorize?state=s", nil)

		rr := httptest.NewRecorder()
		NewGitHubLoginHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/github", nil, "", ""))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://github.com/login/oauth/authorize?state=s", rr.Header().Get("Location"))
	})

	t.Run("state store error", func(t *testing.T) {
		mockSvc.EXPECT().BeginLogin(gomock.Any()).Return("", errors.New("redis down"))

		rr := httptest.NewRecorder()
		NewGitHubLoginHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/github", nil, "", ""))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGitHubCallbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginCompleter(ctrl)
	opts := CookieOptions{Secure: true, MaxAge: 24 * time.Hour}

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
		wantCookie   bool
	}{
		{
			name:  "success sets cookie",
			query: "?state=s&code=c",
			mockSetup: func() {
				mockSvc.EXPECT().CompleteLogin(gomock.Any(), "s", "c").Return("signed-token", nil)
			},
			expectedCode: http.StatusFound,
			wantCookie:   true,
		},
		{
			name:         "user declined",
			query:        "?error=access_denied&state=s",
			mockSetup:    func() {},
			expectedCode: http.StatusFound,
		},
		{
			name:         "missing code",
			query:        "?state=s",
			mockSetup:    func() {},
			expectedCode: http.StatusFound,
		},
		{
			name:  "forged state",
			query: "?state=bad&code=c",
			mockSetup: func() {
				mockSvc.EXPECT().CompleteLogin(gomock.Any(), "bad", "c").Return("", services.ErrInvalidOAuthState)
			},
			expectedCode: http.StatusFound,
		},
		{
			name:  "github error",
			query: "?state=s&code=c",
			mockSetup: func() {
				mockSvc.EXPECT().CompleteLogin(gomock.Any(), "s", "c").Return("", errors.New("exchange failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewGitHubCallbackHandler(mockSvc, opts).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/github/callback"+tt.query, nil, "", ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusFound {
				assert.Equal(t, "/", rr.Header().Get("Location"))
			}

			cookies := rr.Result().Cookies()
			if !tt.wantCookie {
				assert.Empty(t, cookies)
				return
			}

			require.Len(t, cookies, 1)
			c := cookies[0]
			assert.Equal(t, models.SessionCookieName, c.Name)
			assert.Equal(t, "signed-token", c.Value)
			assert.Equal(t, "/", c.Path)
			assert.Equal(t, 86400, c.MaxAge)
			assert.True(t, c.HttpOnly)
			assert.True(t, c.Secure)
			assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		})
	}
}
