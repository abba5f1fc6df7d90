package middleware

import (
	"net/http"

	"rentals/internal/platform/logger"
	pnet "rentals/internal/platform/net"

	"github.com/google/uuid"
)

// HeaderRequestID is the correlation header honored and mirrored by RequestID
const HeaderRequestID = "X-Request-ID"

// RequestID propagates X-Request-ID or mints a fresh uuid, stores it on the
// request context and mirrors it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(HeaderRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			ctx := pnet.WithRequestID(r.Context(), reqID)
			ctx = logger.WithRequest(ctx, reqID)
			w.Header().Set(HeaderRequestID, reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
