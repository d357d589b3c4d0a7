package models

import "context"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

type userIDContextKey struct{}

// WithUserID attaches the authenticated user id to a context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// GetUserID retrieves the authenticated user id from context.
// ok is false when the request is anonymous.
func GetUserID(ctx context.Context) (userID string, ok bool) {
	userID, _ = ctx.Value(userIDContextKey{}).(string)
	return userID, userID != ""
}
