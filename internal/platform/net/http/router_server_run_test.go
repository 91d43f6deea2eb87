package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibecheck/internal/platform/config"
	phttp "vibecheck/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestServer_RunAndShutdown(t *testing.T) {
	// an ephemeral port keeps parallel CI runs from colliding
	t.Setenv("API_PORT", "127.0.0.1:0")

	// the option hook sees the raw mux; routes wait until after Use
	hooked := false
	srv := phttp.NewServer(config.New(), func(m *chi.Mux) { hooked = true })
	if !hooked {
		t.Fatalf("NewServer option never ran")
	}

	r := srv.Router()

	// chi requires middleware before any route is mounted
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Stamped", "yes")
			next.ServeHTTP(w, req)
		})
	})

	r.Group(func(gr phttp.Router) {
		gr.Get("/probe/live", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "live")
		})
	})

	r.Get("/tagged", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "ok") })
	r.Post("/model", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
	r.Put("/model", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Patch("/model", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
	r.Delete("/model", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up before poking the mux
	time.Sleep(50 * time.Millisecond)

	serve := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	if rec := serve("GET", "/probe/live"); rec.Code != http.StatusOK || rec.Body.String() != "live" {
		t.Fatalf("GET /probe/live => %d %q", rec.Code, rec.Body.String())
	}
	if rec := serve("GET", "/tagged"); rec.Header().Get("X-Stamped") != "yes" {
		t.Fatalf("middleware header not applied")
	}

	verbs := []struct {
		method string
		want   int
	}{
		{"POST", http.StatusCreated},
		{"PUT", http.StatusOK},
		{"PATCH", http.StatusAccepted},
		{"DELETE", http.StatusNoContent},
	}
	for _, v := range verbs {
		if rec := serve(v.method, "/model"); rec.Code != v.want {
			t.Fatalf("%s /model => %d, want %d", v.method, rec.Code, v.want)
		}
	}

	if got := srv.Addr(); got != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q, want the env override", got)
	}

	// Shutdown should unblock Run with a nil error
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run still blocked after Shutdown")
	}
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up before pulling the plug
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after context cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run still blocked after context cancel")
	}
}

func TestNewServer_AddrFromEnv(t *testing.T) {
	t.Setenv("API_PORT", ":9870")
	srv := phttp.NewServer(config.New())
	if got := srv.Addr(); got != ":9870" {
		t.Fatalf("Addr() = %q, want :9870", got)
	}
}

func TestServer_Run_SurfacesListenError(t *testing.T) {
	// "abc" is not a port; net.Listen rejects it immediately
	t.Setenv("API_PORT", "127.0.0.1:abc")
	srv := phttp.NewServer(config.New())

	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("Run accepted an unlistenable address")
	}
}
