package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/views"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// AskerTradeLister lists trades requested by an asker.
type AskerTradeLister interface {
	ListAsAsker(ctx context.Context, askerID string) ([]models.TradeView, error)
}

// NewUserRequestsHandler renders the trades the caller has requested.
func NewUserRequestsHandler(svc AskerTradeLister, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		trades, err := svc.ListAsAsker(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		renderPage(w, r, renderer, views.UserRequests, views.UserRequestsPage{IsLoggedIn: true, Trades: trades})
	}
}
