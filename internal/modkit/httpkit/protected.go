package httpkit

import (
	"net/http"
	"path"
	"sort"
	"sync"

	"vibecheck/internal/platform/net/middleware"

	phttp "vibecheck/internal/platform/net/http"
)

// Protected mounts fn's routes behind bearer auth and records each one in
// the secured-path registry
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(&securedRouter{Router: gr})
	})
}

var (
	securedMu  sync.Mutex
	securedSet = map[string]struct{}{}
)

func markSecured(method, path string) {
	securedMu.Lock()
	securedSet[method+" "+path] = struct{}{}
	securedMu.Unlock()
}

// SecuredPaths lists every "METHOD /path" mounted through Protected,
// sorted. The meta service endpoint surfaces this so operators can see
// which routes demand a bearer token.
func SecuredPaths() []string {
	securedMu.Lock()
	defer securedMu.Unlock()
	out := make([]string, 0, len(securedSet))
	for k := range securedSet {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// securedRouter forwards to the wrapped Router while tracking the mount
// base so nested Route calls record full paths
type securedRouter struct {
	Router
	base string
}

// joinPath joins a mount base and a route pattern into one rooted clean path
func joinPath(a, b string) string {
	return path.Join("/", a, b)
}

// secured records the route in the registry and hands the pattern back
func (s *securedRouter) secured(method, pattern string) string {
	markSecured(method, joinPath(s.base, pattern))
	return pattern
}

// Route tracks the prefix in the child's base so registry entries carry
// the full path; registrations inside fn forward to the wrapped Router,
// not to the subrouter scoped at prefix
func (s *securedRouter) Route(prefix string, fn func(Router)) {
	child := &securedRouter{Router: s.Router, base: joinPath(s.base, prefix)}
	s.Router.Route(prefix, func(_ Router) { fn(child) })
}

func (s *securedRouter) Handle(path string, h http.Handler) { s.Router.Handle(path, h) }

func (s *securedRouter) Get(path string, h phttp.Handler) {
	s.Router.Get(s.secured("GET", path), h)
}

func (s *securedRouter) Post(path string, h phttp.Handler) {
	s.Router.Post(s.secured("POST", path), h)
}

func (s *securedRouter) Put(path string, h phttp.Handler) {
	s.Router.Put(s.secured("PUT", path), h)
}

func (s *securedRouter) Patch(path string, h phttp.Handler) {
	s.Router.Patch(s.secured("PATCH", path), h)
}

func (s *securedRouter) Delete(path string, h phttp.Handler) {
	s.Router.Delete(s.secured("DELETE", path), h)
}

func (s *securedRouter) Head(path string, h phttp.Handler) {
	s.Router.Head(s.secured("HEAD", path), h)
}

func (s *securedRouter) Options(path string, h phttp.Handler) {
	s.Router.Options(s.secured("OPTIONS", path), h)
}
