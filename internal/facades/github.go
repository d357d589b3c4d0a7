package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const defaultGitHubAPIURL = "https://api.github.com"

// GitHubOAuthFacade implements the GitHub login flow: the authorize redirect,
// the code exchange and the profile lookup.
type GitHubOAuthFacade struct {
	config *oauth2.Config
	apiURL string
}

// GitHubOption configures a GitHubOAuthFacade.
type GitHubOption func(*GitHubOAuthFacade)

// WithEndpoint overrides the OAuth2 authorize and token URLs.
func WithEndpoint(endpoint oauth2.Endpoint) GitHubOption {
	return func(f *GitHubOAuthFacade) {
		f.config.Endpoint = endpoint
	}
}

// WithAPIURL overrides the GitHub REST API base URL.
func WithAPIURL(apiURL string) GitHubOption {
	return func(f *GitHubOAuthFacade) {
		f.apiURL = apiURL
	}
}

// NewGitHubOAuthFacade creates a new facade for the given OAuth app.
func NewGitHubOAuthFacade(clientID, clientSecret, callbackURL string, opts ...GitHubOption) *GitHubOAuthFacade {
	f := &GitHubOAuthFacade{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     github.Endpoint,
		},
		apiURL: defaultGitHubAPIURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AuthCodeURL returns the GitHub authorize URL carrying state.
func (f *GitHubOAuthFacade) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state)
}

// FetchProfile exchanges the authorization code and loads the GitHub user behind it.
func (f *GitHubOAuthFacade) FetchProfile(ctx context.Context, code string) (*models.GitHubProfile, error) {
	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to exchange GitHub code", "error", err)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := f.config.Client(ctx, token).Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch GitHub profile", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("unexpected GitHub profile status", "status", resp.StatusCode)
		return nil, fmt.Errorf("github user api returned status %d", resp.StatusCode)
	}

	var profile models.GitHubProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		logger.Log.Errorw("failed to decode GitHub profile", "error", err)
		return nil, err
	}
	if profile.ID == 0 {
		return nil, fmt.Errorf("github user api returned no id")
	}

	return &profile, nil
}
