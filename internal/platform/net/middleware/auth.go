package middleware

import (
	"net/http"

	pnet "vibecheck/internal/platform/net"
)

// AuthPort is the seam bearer gates implement
type AuthPort interface {
	// Parse returns the authenticated principal from the request or an error
	Parse(r *http.Request) (principal string, err error)
}

// Auth gates requests behind p and stores the principal on the context.
// A nil port leaves the chain open; write renders the mapped rejection.
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			principal, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithPrincipal(r.Context(), principal)))
		})
	}
}
