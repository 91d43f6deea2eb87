// Package module holds the modkit module contract and the port helpers
// built on it
package module

import (
	phttp "vibecheck/internal/platform/net/http"
)

// Module mirrors the modkit contract. It lives in its own package so a
// module can export a ports type without importing modkit back.
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
