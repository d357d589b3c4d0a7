package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/jwt"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Error variables
var (
	ErrInvalidOAuthState = errors.New("unknown or expired oauth state")
	ErrSessionNotFound   = errors.New("session not found")
)

// GitHubClient drives the GitHub OAuth flow.
type GitHubClient interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*models.GitHubProfile, error)
}

// OAuthStateStore keeps one-time OAuth state values.
type OAuthStateStore interface {
	Save(ctx context.Context, state string) error
	Consume(ctx context.Context, state string) (bool, error)
}

// SessionStore keeps login sessions.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionTokener signs and parses session tokens.
type SessionTokener interface {
	Generate(ctx context.Context, userID, sessionID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles GitHub login, session lookup and logout.
type AuthService struct {
	github   GitHubClient
	states   OAuthStateStore
	sessions SessionStore
	users    UserWriter
	tokens   SessionTokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	github GitHubClient,
	states OAuthStateStore,
	sessions SessionStore,
	users UserWriter,
	tokens SessionTokener,
) *AuthService {
	return &AuthService{
		github:   github,
		states:   states,
		sessions: sessions,
		users:    users,
		tokens:   tokens,
	}
}

// BeginLogin issues a fresh state and returns the GitHub authorize URL.
func (svc *AuthService) BeginLogin(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := svc.states.Save(ctx, state); err != nil {
		logger.Log.Errorw("failed to save oauth state", "err", err)
		return "", err
	}
	return svc.github.AuthCodeURL(state), nil
}

// CompleteLogin validates the state, loads the GitHub profile, upserts the
// user and opens a session. It returns the signed session token.
func (svc *AuthService) CompleteLogin(ctx context.Context, state, code string) (string, error) {
	ok, err := svc.states.Consume(ctx, state)
	if err != nil {
		logger.Log.Errorw("failed to consume oauth state", "err", err)
		return "", err
	}
	if !ok {
		logger.Log.Warnw("oauth state rejected")
		return "", ErrInvalidOAuthState
	}

	profile, err := svc.github.FetchProfile(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to fetch github profile", "err", err)
		return "", err
	}

	userID := strconv.FormatInt(profile.ID, 10)
	if err := svc.users.Upsert(ctx, userID, profile.Name, profile.Login, profile.PublicRepos); err != nil {
		logger.Log.Errorw("failed to upsert user", "userID", userID, "err", err)
		return "", err
	}

	sessionID := uuid.NewString()
	if err := svc.sessions.Save(ctx, sessionID, userID); err != nil {
		logger.Log.Errorw("failed to save session", "userID", userID, "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, userID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "userID", userID, "err", err)
		return "", err
	}

	logger.Log.Infow("user logged in", "userID", userID, "username", profile.Login)
	return token, nil
}

// Authenticate resolves a session token to the user id it belongs to.
// The token must be valid and its session must still exist.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("session token rejected", "err", err)
		return "", ErrSessionNotFound
	}

	userID, err := svc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return "", err
	}
	if userID == "" || userID != claims.UserID {
		return "", ErrSessionNotFound
	}

	return userID, nil
}

// Logout ends the session behind token. Invalid tokens are ignored.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return nil
	}

	if err := svc.sessions.Delete(ctx, claims.SessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "userID", claims.UserID, "err", err)
		return err
	}

	logger.Log.Infow("user logged out", "userID", claims.UserID)
	return nil
}
