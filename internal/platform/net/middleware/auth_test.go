package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/net"
	"vibecheck/internal/platform/net/middleware"
)

// keyPort authenticates every request as its principal, or rejects with err
type keyPort struct {
	principal string
	err       error
}

func (p keyPort) Parse(*http.Request) (string, error) { return p.principal, p.err }

func statusOnly(w http.ResponseWriter, status int, _ any) { w.WriteHeader(status) }

func TestAuth_NilPortLeavesChainOpen(t *testing.T) {
	t.Parallel()

	called := false
	h := middleware.Auth(nil, statusOnly)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/classify", nil))

	if !called {
		t.Fatal("handler never ran")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuth_RejectionSkipsHandler(t *testing.T) {
	t.Parallel()

	port := keyPort{err: perr.Unauthorizedf("invalid bearer token")}
	h := middleware.Auth(port, statusOnly)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler ran behind a rejecting port")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/classify/retrain", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuth_PrincipalReachesHandler(t *testing.T) {
	t.Parallel()

	var got string
	h := middleware.Auth(keyPort{principal: "admin"}, statusOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = net.Principal(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/classify/batch", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got != "admin" {
		t.Fatalf("principal = %q, want admin", got)
	}
}
