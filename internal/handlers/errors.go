package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/middlewares"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
)

// writeError maps service errors onto HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrTradeNotFound),
		errors.Is(err, services.ErrNotTradeOwner):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, services.ErrEmptyBookName),
		errors.Is(err, services.ErrOwnBook):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidOAuthState),
		errors.Is(err, services.ErrSessionNotFound):
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		logger.Log.Errorw("internal server error",
			"path", r.URL.Path,
			"request_id", middlewares.GetRequestID(r.Context()),
			"err", err,
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// pathID parses the {id} URL parameter. A malformed id is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Log.Debugw("malformed id in path", "path", r.URL.Path)
		http.Error(w, "Not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// callerID returns the user id placed in the context by the auth middleware.
// Requests without one are sent to the landing page.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := models.GetUserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return "", false
	}
	return userID, true
}
