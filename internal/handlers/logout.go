package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// LogoutTokener extracts the session token from a request.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Logouter ends a session.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler ends the caller's session, clears the cookie and redirects to /.
func NewLogoutHandler(svc Logouter, tokener LogoutTokener, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		clearSessionCookie(w, cookie)

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if err := svc.Logout(ctx, token); err != nil {
			logger.Log.Errorw("failed to end session", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
