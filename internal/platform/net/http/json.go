package http

import (
	"net/http"

	"vibecheck/internal/platform/net/http/bind"
)

// JSONHandler lifts a bind-then-compute function into a platform Handler.
// Bind failures and fn errors both flow out through the error envelope.
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return respondWith(fn(r, in))
	})
}
