// Package middleware adapts chi middleware behind signatures that do not leak chi types
package middleware

import (
	"net/http"
	"time"

	pstrings "vibecheck/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the handler-wrapping shape every adapter here returns
type Middleware = func(http.Handler) http.Handler

// RequestID propagates X-Request-ID, minting one when absent
func RequestID() Middleware { return chimw.RequestID }

// RealIP rewrites RemoteAddr from X-Forwarded-For style headers
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache marks responses uncacheable for clients and proxies
func NoCache() Middleware { return chimw.NoCache }

// Heartbeat answers GET path with a bare 200 for load balancer checks
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// RedirectSlashes redirects /runs/ style paths to /runs
func RedirectSlashes() Middleware { return chimw.RedirectSlashes }

// StripSlashes drops a trailing slash before routing
func StripSlashes() Middleware { return chimw.StripSlashes }

// AllowContentType rejects body-carrying requests whose Content-Type is
// not listed. Body-less requests pass unchecked.
func AllowContentType(ct ...string) Middleware { return chimw.AllowContentType(ct...) }

// Throttle caps in-flight requests across the process
func Throttle(limit int) Middleware { return chimw.Throttle(limit) }

// Compress negotiates response compression at the given flate level
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return func(next http.Handler) http.Handler { return c.Handler(next) }
}

// CORSOptions is the subset of go-chi/cors knobs the services tune
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS builds a cors handler, filling unset method and header lists
func CORS(o CORSOptions) Middleware {
	methods := pstrings.IfEmpty(o.AllowedMethods, []string{
		"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS",
	})
	headers := pstrings.IfEmpty(o.AllowedHeaders, []string{
		"Accept", "Authorization", "Content-Type", "X-Request-ID",
	})
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
