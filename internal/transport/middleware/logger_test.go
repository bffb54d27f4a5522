package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawndon/lawndon-backend/pkg/ctxutil"
)

func serveLogged(t *testing.T, status int, path string, prepare func(*http.Request) *http.Request) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if prepare != nil {
		req = prepare(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogger_AccessLineFields(t *testing.T) {
	out := serveLogged(t, http.StatusOK, "/query", nil)

	assert.Contains(t, out, "http.request")
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "/query")
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, "duration")
	assert.Contains(t, out, "INFO")
}

func TestLogger_ServerErrorsLogAtErrorLevel(t *testing.T) {
	out := serveLogged(t, http.StatusInternalServerError, "/query", nil)

	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, `"status":500`)
}

func TestLogger_CarriesRequestID(t *testing.T) {
	out := serveLogged(t, http.StatusOK, "/", func(req *http.Request) *http.Request {
		return req.WithContext(ctxutil.WithRequestID(req.Context(), "req-abc-123"))
	})

	assert.Contains(t, out, "req-abc-123")
}
