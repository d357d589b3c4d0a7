package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// LoginStarter starts the GitHub OAuth flow.
type LoginStarter interface {
	BeginLogin(ctx context.Context) (string, error)
}

// NewGitHubLoginHandler redirects the browser to GitHub's authorize page.
func NewGitHubLoginHandler(svc LoginStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := svc.BeginLogin(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}
