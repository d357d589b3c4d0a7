package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// TradeWithdrawer withdraws a trade the asker requested.
type TradeWithdrawer interface {
	Withdraw(ctx context.Context, askerID string, tradeID uuid.UUID) error
}

// NewDeleteTradeHandler returns an HTTP handler for withdrawing a trade.
// @Summary Withdraw a trade
// @Description Deletes a trade requested by the caller, whatever its status
// @Tags trades
// @Produce plain
// @Param id path string true "Trade ID" format(uuid)
// @Success 302 "Redirect to /my-requests"
// @Failure 404 {string} string "Trade not found or not requested by the caller"
// @Failure 500 {string} string "Internal server error"
// @Router /api/delete-trade/{id} [get]
// @Security SessionCookie
func NewDeleteTradeHandler(svc TradeWithdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		tradeID, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Withdraw(r.Context(), userID, tradeID); err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/my-requests", http.StatusFound)
	}
}
