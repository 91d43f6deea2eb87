package httpkit

import (
	"net/http"

	pnet "vibecheck/internal/platform/net"
	phttp "vibecheck/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// RunScopePort validates a run id before handlers see it
type RunScopePort interface {
	Validate(r *http.Request, runID string) error
}

// RunScope reads the {run} path param, validates it through the port, and
// scopes it onto the request context so handlers and logs can pick it up
func RunScope(p RunScopePort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "run")
			if p != nil {
				if err := p.Validate(r, id); err != nil {
					status, body := pnet.Error(err, pnet.RequestID(r.Context()))
					write(w, status, body)
					return
				}
			}
			ctx := pnet.WithRequest(r.Context(), pnet.RequestID(r.Context()), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RunScoped wires RunScope to the platform JSON writer
func RunScoped(p RunScopePort) func(http.Handler) http.Handler {
	return RunScope(p, phttp.JSON)
}
