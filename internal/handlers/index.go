package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/views"
)

// NewIndexHandler renders the landing page.
func NewIndexHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, loggedIn := models.GetUserID(r.Context())
		renderPage(w, r, renderer, views.Index, views.IndexPage{IsLoggedIn: loggedIn})
	}
}
