package modkit

import (
	phttp "vibecheck/internal/platform/net/http"
)

// Module is what the API composes: anything that can mount routes under
// the router seam and expose a port set for cross wiring. Kept small so
// modules stay decoupled.
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
