// Package httpkit is the module-facing routing toolkit. It re-exports the
// platform transport surface so feature packages mount handlers without
// importing internal/platform/net/http themselves.
package httpkit

import (
	"net/http"

	phttp "vibecheck/internal/platform/net/http"
)

type (
	// Envelope is the JSON wrapper every response renders into
	Envelope = phttp.Envelope

	// Response pairs a status with a payload before rendering
	Response = phttp.Response

	// Handler is the platform handler signature
	Handler = phttp.Handler

	// Router is the routing seam modules mount onto
	Router = phttp.Router
)

// Forwarders into the platform response constructors. Modules build
// responses through these without touching phttp directly.
var (
	OK        = phttp.OK
	Created   = phttp.Created
	NoContent = phttp.NoContent
	Error     = phttp.Error
	List      = phttp.List
	Handle    = phttp.Handle
)

// Call adapts a body-less handler. A returned Response passes through
// untouched; any other value is wrapped in a 200.
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
