package handlers

import (
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/middlewares"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Renderer renders a named HTML view.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

func renderPage(w http.ResponseWriter, r *http.Request, renderer Renderer, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, data); err != nil {
		logger.Log.Errorw("failed to render view",
			"view", name,
			"request_id", middlewares.GetRequestID(r.Context()),
			"err", err,
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
