package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lawndon/lawndon-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id between client, server and logs.
const RequestIDHeader = "X-Request-Id"

// RequestID trusts an incoming request id header when present and mints a
// UUID otherwise. The id lands in the context and is echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
