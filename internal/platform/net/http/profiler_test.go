package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vibecheck/internal/platform/config"
	phttp "vibecheck/internal/platform/net/http"
)

func profilerProbe(t *testing.T, enabled bool, path string) int {
	t.Helper()
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountProfiler(r, "/debug", enabled)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec.Code
}

func TestMountProfiler_Enabled(t *testing.T) {
	// the chi profiler serves its index under <prefix>/pprof/
	if code := profilerProbe(t, true, "/debug/pprof/"); code != http.StatusOK {
		t.Fatalf("GET /debug/pprof/ => %d, want 200", code)
	}
	if code := profilerProbe(t, true, "/debug/pprof/cmdline"); code != http.StatusOK {
		t.Fatalf("GET /debug/pprof/cmdline => %d, want 200", code)
	}

	// the bare prefix redirects into /pprof/ or misses, either is acceptable
	code := profilerProbe(t, true, "/debug")
	switch code {
	case http.StatusMovedPermanently, http.StatusPermanentRedirect, http.StatusNotFound:
	default:
		t.Fatalf("GET /debug => %d, want a redirect or 404", code)
	}
}

func TestMountProfiler_Disabled(t *testing.T) {
	if code := profilerProbe(t, false, "/debug/pprof/"); code != http.StatusNotFound {
		t.Fatalf("GET /debug/pprof/ => %d, want 404 when disabled", code)
	}
}
