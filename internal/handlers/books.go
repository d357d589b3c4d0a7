package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/views"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// BookLister lists the whole catalog as seen by a viewer.
type BookLister interface {
	ListForViewer(ctx context.Context, viewerID string) ([]models.BookListing, error)
}

// NewBooksHandler renders every book. The caller's own books are disabled.
func NewBooksHandler(svc BookLister, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		books, err := svc.ListForViewer(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		renderPage(w, r, renderer, views.Books, views.BooksPage{IsLoggedIn: true, Books: books})
	}
}
