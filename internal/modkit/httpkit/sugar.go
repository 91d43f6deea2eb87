package httpkit

import (
	"net/http"

	phttp "vibecheck/internal/platform/net/http"
)

// PostJSON mounts h under POST with its body decoded through
// bind.ParseJSON, so struct validate tags apply before h runs
func PostJSON[T any](r Router, pattern string, h func(*http.Request, T) (any, error)) {
	r.Post(pattern, phttp.JSONHandler(h))
}

// Get mounts a body-less handler; the return value rides the envelope
func Get(r Router, pattern string, h func(*http.Request) (any, error)) {
	r.Get(pattern, Call(h))
}

// Post is Get's shape under POST, for actions that take no request body
func Post(r Router, pattern string, h func(*http.Request) (any, error)) {
	r.Post(pattern, Call(h))
}
