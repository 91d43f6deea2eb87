package httpkit

import (
	"net/http"
	"strings"

	perrs "vibecheck/internal/platform/errors"
	pnet "vibecheck/internal/platform/net"
)

func noBearer() error { return perrs.Unauthorizedf("missing bearer token") }

// must unwraps a context accessor for routes whose middleware already
// guarantees the value is present
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Principal returns the authenticated caller from the request context
func Principal(r *http.Request) (string, error) {
	if p := pnet.Principal(r.Context()); p != "" {
		return p, nil
	}
	return "", noBearer()
}

// MustPrincipal returns the authenticated caller or panics
func MustPrincipal(r *http.Request) string { return must(Principal(r)) }

// RunID returns the run id scoped onto the request context
func RunID(r *http.Request) (string, error) {
	if id := pnet.RunID(r.Context()); id != "" {
		return id, nil
	}
	return "", perrs.InvalidArgf("missing run scope")
}

// MustRunID returns the scoped run id or panics
// only use on routes behind the RunScope middleware
func MustRunID(r *http.Request) string { return must(RunID(r)) }

// Bearer returns the raw bearer token from the Authorization header.
// RFC 6750 makes the scheme case-insensitive; the token keeps its bytes.
func Bearer(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	const scheme = "bearer "
	if len(authz) < len(scheme) || !strings.EqualFold(authz[:len(scheme)], scheme) {
		return "", noBearer()
	}
	raw := strings.TrimSpace(authz[len(scheme):])
	if raw == "" {
		return "", noBearer()
	}
	return raw, nil
}

// MustBearer returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustBearer(r *http.Request) string { return must(Bearer(r)) }
