package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// BookCreator adds a book to the catalog.
type BookCreator interface {
	Create(ctx context.Context, userID, name string) (*models.BookDB, error)
}

// NewAddBookHandler returns an HTTP handler for adding a book.
// @Summary Add a book
// @Description Adds a book owned by the caller
// @Tags books
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param name formData string true "Book title"
// @Success 302 "Redirect to /my-books"
// @Failure 400 {string} string "Book name is required"
// @Failure 500 {string} string "Internal server error"
// @Router /api/add-book [post]
// @Security SessionCookie
func NewAddBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Malformed form", http.StatusBadRequest)
			return
		}

		if _, err := svc.Create(r.Context(), userID, r.PostForm.Get("name")); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/my-books", http.StatusFound)
	}
}
