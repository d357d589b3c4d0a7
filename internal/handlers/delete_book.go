package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// BookDeleter deletes a book together with its trades.
type BookDeleter interface {
	DeleteOwned(ctx context.Context, userID string, bookID uuid.UUID) error
}

// NewDeleteBookHandler returns an HTTP handler for deleting an owned book.
// @Summary Delete a book
// @Description Deletes a book owned by the caller and every trade on it
// @Tags books
// @Produce plain
// @Param id path string true "Book ID" format(uuid)
// @Success 302 "Redirect to /my-books"
// @Failure 404 {string} string "Book not found or not owned by the caller"
// @Failure 500 {string} string "Internal server error"
// @Router /api/delete-book/{id} [get]
// @Security SessionCookie
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteOwned(r.Context(), userID, bookID); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/my-books", http.StatusFound)
	}
}
