package modkit

import (
	"net/http"

	"vibecheck/internal/modkit/httpkit"
)

// Option adjusts one knob on the module under construction
type Option func(*Built)

// WithName names the module for logs and the registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts the module under a path prefix
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends module-scoped middleware; repeated calls accumulate
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module a ports value declared elsewhere.
// The concrete type belongs to whichever module imports it.
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithSwagger switches the module's swagger UI on or off at mount time
func WithSwagger(enabled bool) Option {
	return func(b *Built) { b.SwaggerOn = enabled }
}

// WithSubrouter supplies a factory that derives the module router from the parent
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister supplies the hook that attaches the module's endpoints
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
