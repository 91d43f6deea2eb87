package http

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler hangs the chi pprof mux under prefix when enabled.
// enabled=false mounts nothing at all.
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	// the profiler mux expects to sit at /, so strip the prefix on the way in
	pprof := http.StripPrefix(prefix, chimw.Profiler())
	serve := func(w http.ResponseWriter, req *http.Request) { pprof.ServeHTTP(w, req) }

	// cover both the bare prefix and everything below it
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
