package net_test

import (
	"context"
	"testing"

	pnet "vibecheck/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	t.Parallel()

	base := context.Background()

	cases := []struct {
		name  string
		reqID string
		runID string
	}{
		{"both ids", "req-123", "run-9f0"},
		{"request id only", "req-123", ""},
		{"run id only", "", "run-9f0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := pnet.WithRequest(base, tc.reqID, tc.runID)
			if got := pnet.RequestID(ctx); got != tc.reqID {
				t.Fatalf("RequestID = %q, want %q", got, tc.reqID)
			}
			if got := pnet.RunID(ctx); got != tc.runID {
				t.Fatalf("RunID = %q, want %q", got, tc.runID)
			}
		})
	}

	// nothing to stamp leaves the context identity untouched
	if ctx := pnet.WithRequest(base, "", ""); ctx != base {
		t.Fatal("empty ids still derived a new context")
	}
}

func TestPrincipal(t *testing.T) {
	t.Parallel()

	base := context.Background()

	ctx := pnet.WithPrincipal(base, "batch-key")
	if got := pnet.Principal(ctx); got != "batch-key" {
		t.Fatalf("Principal = %q, want batch-key", got)
	}
	if got := pnet.Principal(base); got != "" {
		t.Fatalf("Principal on bare context = %q, want empty", got)
	}
	if same := pnet.WithPrincipal(base, ""); same != base {
		t.Fatal("empty principal still derived a new context")
	}
}
