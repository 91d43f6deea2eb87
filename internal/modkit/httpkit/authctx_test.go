package httpkit

import (
	"net/http"
	"testing"

	perr "vibecheck/internal/platform/errors"
	pnet "vibecheck/internal/platform/net"
)

// bareReq returns a request with no identity on its context
func bareReq() *http.Request {
	req, _ := http.NewRequest(http.MethodGet, "http://x.test/y", nil)
	return req
}

// scopedReq stamps a run id onto the request context
func scopedReq(runID string) *http.Request {
	req := bareReq()
	return req.WithContext(pnet.WithRequest(req.Context(), "", runID))
}

// authedReq stamps a principal onto the request context
func authedReq(principal string) *http.Request {
	req := bareReq()
	return req.WithContext(pnet.WithPrincipal(req.Context(), principal))
}

func TestPrincipal(t *testing.T) {
	t.Parallel()

	got, err := Principal(authedReq("batch-key"))
	if err != nil {
		t.Fatalf("Principal: %v", err)
	}
	if got != "batch-key" {
		t.Fatalf("Principal = %q, want batch-key", got)
	}

	if _, err := Principal(bareReq()); !perr.IsCode(err, perr.CodeUnauthorized) {
		t.Fatalf("unauthenticated Principal error = %v, want unauthorized", err)
	}
}

func TestRunID(t *testing.T) {
	t.Parallel()

	got, err := RunID(scopedReq("run-9f0"))
	if err != nil {
		t.Fatalf("RunID: %v", err)
	}
	if got != "run-9f0" {
		t.Fatalf("RunID = %q, want run-9f0", got)
	}

	if _, err := RunID(bareReq()); !perr.IsCode(err, perr.CodeInvalidArgument) {
		t.Fatalf("unscoped RunID error = %v, want invalid argument", err)
	}
}

func TestMustPrincipal_PanicsWithoutAuth(t *testing.T) {
	t.Parallel()

	if got := MustPrincipal(authedReq("admin")); got != "admin" {
		t.Fatalf("MustPrincipal = %q, want admin", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustPrincipal never panicked on a bare request")
		}
	}()
	MustPrincipal(bareReq())
}

func TestMustRunID_PanicsWithoutScope(t *testing.T) {
	t.Parallel()

	if got := MustRunID(scopedReq("run-1")); got != "run-1" {
		t.Fatalf("MustRunID = %q, want run-1", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustRunID never panicked on an unscoped request")
		}
	}()
	MustRunID(bareReq())
}

func TestBearer(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name  string
		authz string
		want  string
	}{
		{"canonical", "Bearer abc123", "abc123"},
		{"lowercase", "bearer xyz", "xyz"},
		{"mixed case", "BeArEr token", "token"},
		{"padded token", "bearer     stuff", "stuff"},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			req := bareReq()
			req.Header.Set("Authorization", tc.authz)
			got, err := Bearer(req)
			if err != nil {
				t.Fatalf("Bearer(%q): %v", tc.authz, err)
			}
			if got != tc.want {
				t.Fatalf("Bearer(%q) = %q, want %q", tc.authz, got, tc.want)
			}
		})
	}

	rejected := []struct {
		name  string
		authz string
	}{
		{"no header", ""},
		{"wrong scheme", "Token abc"},
		{"scheme only", "Bearer"},
		{"scheme and one space", "Bearer "},
		{"scheme and spaces", "Bearer     "},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			req := bareReq()
			if tc.authz != "" {
				req.Header.Set("Authorization", tc.authz)
			}
			if _, err := Bearer(req); !perr.IsCode(err, perr.CodeUnauthorized) {
				t.Fatalf("Bearer(%q) error = %v, want unauthorized", tc.authz, err)
			}
		})
	}
}

func TestMustBearer_PanicsWithoutToken(t *testing.T) {
	t.Parallel()

	req := bareReq()
	req.Header.Set("Authorization", "Bearer ok")
	if got := MustBearer(req); got != "ok" {
		t.Fatalf("MustBearer = %q, want ok", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustBearer never panicked without a token")
		}
	}()
	MustBearer(bareReq())
}
