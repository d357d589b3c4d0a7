package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// TradeAccepter accepts a trade addressed to the owner.
type TradeAccepter interface {
	Accept(ctx context.Context, ownerID string, tradeID uuid.UUID) error
}

// NewAcceptHandler returns an HTTP handler for accepting a trade.
// @Summary Accept a trade
// @Description Marks a trade on one of the caller's books as ACCEPTED
// @Tags trades
// @Produce plain
// @Param id path string true "Trade ID" format(uuid)
// @Success 302 "Redirect to /trade-requests"
// @Failure 404 {string} string "Trade not found or not addressed to the caller"
// @Failure 500 {string} string "Internal server error"
// @Router /api/accept/{id} [get]
// @Security SessionCookie
func NewAcceptHandler(svc TradeAccepter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		tradeID, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Accept(r.Context(), userID, tradeID); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/trade-requests", http.StatusFound)
	}
}
