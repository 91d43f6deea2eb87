package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"strings"

	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/logger"
	pnet "vibecheck/internal/platform/net"
)

// RecoverJSON turns handler panics into a JSON 500 envelope and logs the
// stack under the request id
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				recoverToJSON(w, r, v)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// recoverToJSON logs the panic with its stack and writes the generic
// envelope. The panic value stays in the log, never in the response.
func recoverToJSON(w http.ResponseWriter, r *http.Request, v any) {
	reqID := pnet.RequestID(r.Context())

	log := logger.C(r.Context())
	if log == nil {
		log = logger.Named("http")
	}
	log.Error().
		Str("request_id", reqID).
		Interface("panic", v).
		Msgf("panic recovered\n%s", indentStack(debug.Stack()))

	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	status, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// indentStack prefixes continuation lines so the trace stays one log entry
func indentStack(raw []byte) string {
	return strings.Join(strings.Split(string(raw), "\n"), "\n\t")
}
