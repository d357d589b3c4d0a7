package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// TradeRequester opens a trade on a book.
type TradeRequester interface {
	Request(ctx context.Context, askerID string, bookID uuid.UUID) (*models.TradeDB, error)
}

// NewAskHandler returns an HTTP handler for requesting a trade.
// @Summary Request a trade
// @Description Creates a PENDING trade from the caller on another user's book
// @Tags trades
// @Produce plain
// @Param id path string true "Book ID" format(uuid)
// @Success 302 "Redirect to /my-requests"
// @Failure 400 {string} string "Cannot request a trade on your own book"
// @Failure 404 {string} string "Book not found"
// @Failure 500 {string} string "Internal server error"
// @Router /api/ask/{id} [get]
// @Security SessionCookie
func NewAskHandler(svc TradeRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathID(w, r)
		if !ok {
			return
		}

		if _, err := svc.Request(r.Context(), userID, bookID); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/my-requests", http.StatusFound)
	}
}
