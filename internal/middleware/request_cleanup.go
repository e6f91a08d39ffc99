package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes bounds how much of an unread body gets discarded; past it the connection is not worth keeping.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what a handler left unread in the request body, up to maxDrainBytes,
// and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
