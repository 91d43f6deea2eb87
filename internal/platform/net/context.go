// Package net carries request-scoped identity between middleware and
// handlers: the request id, the run id a route is scoped to, and the
// authenticated principal.
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const (
	keyRunID     ctxKey = "run_id"
	keyPrincipal ctxKey = "principal"
)

// WithRequest stamps the request id and, when present, the run id.
// The request id rides chi's key so chi tooling sees the same value.
func WithRequest(ctx context.Context, reqID, runID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if runID != "" {
		ctx = context.WithValue(ctx, keyRunID, runID)
	}
	return ctx
}

// WithPrincipal stamps the authenticated caller
func WithPrincipal(ctx context.Context, principal string) context.Context {
	if principal != "" {
		ctx = context.WithValue(ctx, keyPrincipal, principal)
	}
	return ctx
}

// RequestID reads the request id, empty when unset
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// RunID reads the run id a request is scoped to, empty when unset
func RunID(ctx context.Context) string { return stringValue(ctx, keyRunID) }

// Principal reads the authenticated caller, empty when unset
func Principal(ctx context.Context) string { return stringValue(ctx, keyPrincipal) }

func stringValue(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
