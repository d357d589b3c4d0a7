package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The
// transaction is committed unless the handler panics or answers with a 5xx
// status, in which case it is rolled back. The handler's response is held
// back until the outcome is known, so a failed commit is answered with 500
// instead of whatever the handler wrote.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err, "request_id", GetRequestID(r.Context()))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			rw := newTxResponseWriter()
			next.ServeHTTP(rw, r.WithContext(setTxToContext(r.Context(), tx)))

			if rw.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err, "request_id", GetRequestID(r.Context()))
				}
				rw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err, "request_id", GetRequestID(r.Context()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			rw.flush(w)
		})
	}
}

// txResponseWriter buffers a response until the transaction is settled.
type txResponseWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
	wrote      bool
}

func newTxResponseWriter() *txResponseWriter {
	return &txResponseWriter{header: make(http.Header), statusCode: http.StatusOK}
}

func (rw *txResponseWriter) Header() http.Header {
	return rw.header
}

func (rw *txResponseWriter) WriteHeader(code int) {
	if rw.wrote {
		return
	}
	rw.statusCode = code
	rw.wrote = true
}

func (rw *txResponseWriter) Write(b []byte) (int, error) {
	rw.wrote = true
	return rw.body.Write(b)
}

// flush copies the buffered headers, status and body to w.
func (rw *txResponseWriter) flush(w http.ResponseWriter) {
	dst := w.Header()
	for key, values := range rw.header {
		dst[key] = values
	}
	w.WriteHeader(rw.statusCode)
	if _, err := rw.body.WriteTo(w); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
