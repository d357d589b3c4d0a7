package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/middlewares"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
		location     string
	}{
		{name: "user not found", err: services.ErrUserNotFound, expectedCode: http.StatusNotFound, expectedBody: "Not found\n"},
		{name: "book not found", err: services.ErrBookNotFound, expectedCode: http.StatusNotFound, expectedBody: "Not found\n"},
		{name: "trade not found", err: services.ErrTradeNotFound, expectedCode: http.StatusNotFound, expectedBody: "Not found\n"},
		{name: "not trade owner", err: services.ErrNotTradeOwner, expectedCode: http.StatusNotFound, expectedBody: "Not found\n"},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", services.ErrBookNotFound), expectedCode: http.StatusNotFound, expectedBody: "Not found\n"},
		{name: "empty book name", err: services.ErrEmptyBookName, expectedCode: http.StatusBadRequest, expectedBody: services.ErrEmptyBookName.Error() + "\n"},
		{name: "own book", err: services.ErrOwnBook, expectedCode: http.StatusBadRequest, expectedBody: services.ErrOwnBook.Error() + "\n"},
		{name: "invalid oauth state", err: services.ErrInvalidOAuthState, expectedCode: http.StatusFound, location: "/"},
		{name: "session not found", err: services.ErrSessionNotFound, expectedCode: http.StatusFound, location: "/"},
		{name: "infrastructure", err: errors.New("connection refused"), expectedCode: http.StatusInternalServerError, expectedBody: "Internal server error\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/ask/1", nil)
			rr := httptest.NewRecorder()

			writeError(rr, req, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rr.Header().Get("Location"))
				return
			}
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCallerID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rr := httptest.NewRecorder()

	_, ok := callerID(rr, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestPathID(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := pathID(rr, newRequest(http.MethodGet, "/api/ask/abc", nil, "1", "abc"))
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	id, ok := pathID(rr, newRequest(http.MethodGet, "/api/ask/x", nil, "1", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.True(t, ok)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())
}

func TestWriteError_LogsRequestID(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zapcore.ErrorLevel)
	logger.Log = zap.New(core).Sugar()

	handler := middlewares.LoggingMiddleware(zap.NewNop().Sugar())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, errors.New("connection refused"))
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/ask/1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	reqID := rr.Header().Get("X-Request-ID")
	require.NotEmpty(t, reqID)
	assert.Equal(t, reqID, entries[0].ContextMap()["request_id"])
}
