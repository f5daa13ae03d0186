package httpsig

import (
	"bytes"
	"io"
	"net/http"
)

// Require wraps an HTTP handler so that only requests carrying a valid
// signature reach it. The request body is buffered in order to be verified,
// then restored so that downstream handlers can read it as usual; requests
// that fail verification receive a 401 without ever touching the wrapped
// handler.
func Require(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read request body", http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := v.Verify(r, body); err != nil {
				http.Error(w, "invalid request signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
