package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// SettingsUpdater applies a settings form.
type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, userID string, update models.Settings) error
}

// NewUpdateSettingsHandler returns an HTTP handler for the settings form.
// @Summary Update settings
// @Description Overwrites each profile field submitted with a non-empty value. Empty fields keep their stored value.
// @Tags settings
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param name formData string false "Display name"
// @Param city formData string false "City"
// @Param state formData string false "State"
// @Success 302 "Redirect to /"
// @Failure 400 {string} string "Malformed form"
// @Failure 404 {string} string "User not found"
// @Failure 500 {string} string "Internal server error"
// @Router /api/settings [post]
// @Security SessionCookie
func NewUpdateSettingsHandler(svc SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Malformed form", http.StatusBadRequest)
			return
		}

		update := models.Settings{
			Name:  r.PostForm.Get("name"),
			City:  r.PostForm.Get("city"),
			State: r.PostForm.Get("state"),
		}

		if err := svc.UpdateSettings(r.Context(), userID, update); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
