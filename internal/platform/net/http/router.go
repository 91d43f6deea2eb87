package http

import "net/http"

// Handler is the function signature every endpoint resolves to
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the mounting seam. Modules register routes against it and the
// chi adapter is the only implementation outside of tests.
type Router interface {
	Get(pattern string, h Handler)
	Head(pattern string, h Handler)
	Post(pattern string, h Handler)
	Put(pattern string, h Handler)
	Patch(pattern string, h Handler)
	Delete(pattern string, h Handler)
	Options(pattern string, h Handler)

	// Handle mounts a plain http.Handler, for static or generated content
	Handle(pattern string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux returns the underlying handler for the server to serve
	Mux() http.Handler
}
