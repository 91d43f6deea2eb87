package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiAdapter bridges chi.Router to the platform Router interface.
// *chi.Mux satisfies chi.Router, so the same adapter serves the top-level
// mux and every Group/Route subtree.
type chiAdapter struct{ r chi.Router }

// AdaptChi wraps a chi mux so modules can mount against Router
func AdaptChi(m *chi.Mux) Router { return chiAdapter{r: m} }

func asStd(h Handler) http.HandlerFunc { return http.HandlerFunc(h) }

func (c chiAdapter) Get(p string, h Handler)     { c.r.Method(http.MethodGet, p, asStd(h)) }
func (c chiAdapter) Post(p string, h Handler)    { c.r.Method(http.MethodPost, p, asStd(h)) }
func (c chiAdapter) Put(p string, h Handler)     { c.r.Method(http.MethodPut, p, asStd(h)) }
func (c chiAdapter) Patch(p string, h Handler)   { c.r.Method(http.MethodPatch, p, asStd(h)) }
func (c chiAdapter) Delete(p string, h Handler)  { c.r.Method(http.MethodDelete, p, asStd(h)) }
func (c chiAdapter) Head(p string, h Handler)    { c.r.Method(http.MethodHead, p, asStd(h)) }
func (c chiAdapter) Options(p string, h Handler) { c.r.Method(http.MethodOptions, p, asStd(h)) }

func (c chiAdapter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiAdapter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiAdapter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiAdapter{r: sub}) })
}

func (c chiAdapter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiAdapter{r: sub}) })
}

// Mux exposes the underlying router; chi.Router implements http.Handler
func (c chiAdapter) Mux() http.Handler { return c.r }
