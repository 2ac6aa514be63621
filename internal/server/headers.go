package server

import "net/http"

// These two headers opt served pages into cross-origin isolation,
// which browsers require before exposing SharedArrayBuffer.
const (
	embedderPolicyHeader = "Cross-Origin-Embedder-Policy"
	embedderPolicyValue  = "require-corp"
	openerPolicyHeader   = "Cross-Origin-Opener-Policy"
	openerPolicyValue    = "same-origin"
)

// SecureHeaders wraps next so that every response carries the
// isolation headers, whatever status next ends up writing. The headers
// are set before next touches the ResponseWriter, so they land exactly
// once on success, error and redirect responses alike.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(embedderPolicyHeader, embedderPolicyValue)
		w.Header().Set(openerPolicyHeader, openerPolicyValue)
		next.ServeHTTP(w, r)
	})
}
