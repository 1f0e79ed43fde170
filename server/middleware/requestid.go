package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request correlation id.
const HeaderRequestID = "X-Request-Id"

// RequestID assigns every request a correlation id, honoring one supplied by
// the caller. The id is visible to handlers on the request header and echoed
// in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.New().String()
				r.Header.Set(HeaderRequestID, id)
			}
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r)
		})
	}
}
