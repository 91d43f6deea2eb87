package httpkit

import (
	"net/http"
	"strings"

	perrs "vibecheck/internal/platform/errors"
)

// KeyFunc resolves a bearer token to the principal it authenticates
type KeyFunc func(token string) (principal string, err error)

// Port satisfies middleware.AuthPort by parsing Authorization headers
// and delegating token checks to a KeyFunc
type Port struct {
	parse KeyFunc
}

// NewPortFunc wraps a KeyFunc in a Port
func NewPortFunc(fn KeyFunc) *Port {
	return &Port{parse: fn}
}

// bearerToken extracts the raw token from an Authorization header value.
// Scheme matching ignores case and padding; a non-bearer or empty header
// yields "".
func bearerToken(header string) string {
	s := strings.TrimSpace(header)
	const scheme = "bearer"
	if len(s) < len(scheme) || !strings.EqualFold(s[:len(scheme)], scheme) {
		return ""
	}
	return strings.TrimSpace(s[len(scheme):])
}

// Parse authenticates r's bearer token. Malformed headers and rejected
// tokens both come back as unauthorized errors.
func (p *Port) Parse(r *http.Request) (string, error) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	principal, err := p.parse(token)
	if err != nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return principal, nil
}

// StaticKey builds a KeyFunc accepting exactly one key. An empty key
// rejects every token, including the empty one.
func StaticKey(key, principal string) KeyFunc {
	return func(token string) (string, error) {
		if key == "" || token != key {
			return "", perrs.Unauthorizedf("invalid bearer token")
		}
		return principal, nil
	}
}
