package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/views"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// OwnedBookLister lists the books a user owns.
type OwnedBookLister interface {
	ListOwnedBy(ctx context.Context, userID string) ([]models.BookDB, error)
}

// NewUserBooksHandler renders the caller's own books.
func NewUserBooksHandler(svc OwnedBookLister, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		books, err := svc.ListOwnedBy(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		renderPage(w, r, renderer, views.UserBooks, views.UserBooksPage{IsLoggedIn: true, Books: books})
	}
}
