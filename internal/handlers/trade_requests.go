package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/views"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// OwnerTradeLister lists trades addressed to an owner.
type OwnerTradeLister interface {
	ListAsOwner(ctx context.Context, ownerID string) (*models.OwnerTrades, error)
}

// NewTradeRequestsHandler renders trades on the caller's books, bucketed by status.
func NewTradeRequestsHandler(svc OwnerTradeLister, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		trades, err := svc.ListAsOwner(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		renderPage(w, r, renderer, views.TradeRequests, views.TradeRequestsPage{
			IsLoggedIn: true,
			Pending:    trades.Pending,
			Accepted:   trades.Accepted,
			Denied:     trades.Denied,
		})
	}
}
