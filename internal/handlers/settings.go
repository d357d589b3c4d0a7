package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/views"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// SettingsGetter loads the caller's settings.
type SettingsGetter interface {
	GetSettings(ctx context.Context, userID string) (*models.Settings, error)
}

// NewSettingsHandler renders the settings form prefilled with stored values.
func NewSettingsHandler(svc SettingsGetter, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		settings, err := svc.GetSettings(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		renderPage(w, r, renderer, views.Settings, views.SettingsPage{
			IsLoggedIn: true,
			Settings:   *settings,
		})
	}
}
