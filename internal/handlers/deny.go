package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// TradeDenier denies a trade addressed to the owner.
type TradeDenier interface {
	Deny(ctx context.Context, ownerID string, tradeID uuid.UUID) error
}

// NewDenyHandler returns an HTTP handler for denying a trade.
// @Summary Deny a trade
// @Description Marks a trade on one of the caller's books as DENIED
// @Tags trades
// @Produce plain
// @Param id path string true "Trade ID" format(uuid)
// @Success 302 "Redirect to /trade-requests"
// @Failure 404 {string} string "Trade not found or not addressed to the caller"
// @Failure 500 {string} string "Internal server error"
// @Router /api/deny/{id} [get]
// @Security SessionCookie
func NewDenyHandler(svc TradeDenier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		tradeID, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Deny(r.Context(), userID, tradeID); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/trade-requests", http.StatusFound)
	}
}
