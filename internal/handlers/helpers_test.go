package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

// newRequest builds a request as the router would hand it to a handler: with
// the caller id from the auth middleware and the {id} path parameter.
func newRequest(method, target string, body io.Reader, userID, id string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := req.Context()
	if userID != "" {
		ctx = models.WithUserID(ctx, userID)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req.WithContext(ctx)
}

func writePage(w io.Writer, _ string, _ interface{}) error {
	_, err := io.WriteString(w, "<html>page</html>")
	return err
}
