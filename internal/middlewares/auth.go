package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Tokener extracts the session token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionAuthenticator resolves a session token to a user id.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// AuthMiddleware lets through only requests carrying a live session and puts
// the caller's user id into the request context. Anonymous callers are
// redirected to the landing page.
func AuthMiddleware(tokener Tokener, auth SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, err := identify(ctx, r, tokener, auth)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if userID == "" {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(models.WithUserID(ctx, userID)))
		})
	}
}

// IdentityMiddleware attaches the caller's user id when a live session exists
// and passes anonymous requests through unchanged.
func IdentityMiddleware(tokener Tokener, auth SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, err := identify(ctx, r, tokener, auth)
			if err != nil {
				logger.Log.Warnw("session lookup failed, serving anonymously", "err", err)
			}
			if userID != "" {
				ctx = models.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// identify returns "" with a nil error for anonymous callers.
func identify(ctx context.Context, r *http.Request, tokener Tokener, auth SessionAuthenticator) (string, error) {
	token, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil || token == "" {
		return "", nil
	}

	userID, err := auth.Authenticate(ctx, token)
	if errors.Is(err, services.ErrSessionNotFound) {
		logger.Log.Debugw("session not found")
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
