package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// LoginCompleter finishes the GitHub OAuth flow and opens a session.
type LoginCompleter interface {
	CompleteLogin(ctx context.Context, state, code string) (string, error)
}

// NewGitHubCallbackHandler handles GitHub's redirect back to the app. On
// success the session cookie is set. Denied or forged logins land on /.
func NewGitHubCallbackHandler(svc LoginCompleter, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if reason := q.Get("error"); reason != "" {
			logger.Log.Warnw("github login declined", "reason", reason)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		state, code := q.Get("state"), q.Get("code")
		if state == "" || code == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		token, err := svc.CompleteLogin(r.Context(), state, code)
		if err != nil {
			writeError(w, r, err)
			return
		}

		setSessionCookie(w, token, cookie)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
