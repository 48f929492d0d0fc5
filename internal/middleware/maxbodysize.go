package middleware

import (
	"encoding/json"
	"net/http"
)

// tooLargeBody follows the {"error":{"code","message"}} envelope the handlers reply with.
var tooLargeBody = map[string]map[string]string{
	"error": {"code": "request_too_large", "message": "request body too large"},
}

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes. Requests advertising a larger Content-Length are
// rejected with a JSON 413 before reaching the next handler; bodies of unknown
// length are wrapped in http.MaxBytesReader so reading past the limit fails.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				//nolint:errcheck // status line already sent
				json.NewEncoder(w).Encode(tooLargeBody)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
