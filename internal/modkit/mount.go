package modkit

import (
	"net/http"

	"vibecheck/internal/modkit/httpkit"
	str "vibecheck/internal/platform/strings"
)

// Mounted is the route-mounting half of an API module. Modules embed it,
// seed it from Build output, and keep their service state alongside.
type Mounted struct {
	ModuleName string
	PathPrefix string
	Mw         []func(http.Handler) http.Handler
	Subrouter  func(httpkit.Router) httpkit.Router
	Register   func(httpkit.Router)
	PortSet    any
}

// MountedFrom seeds a Mounted from Build output. Register usually closes
// over module state, so callers overwrite it after construction.
func MountedFrom(b Built) Mounted {
	return Mounted{
		ModuleName: b.Name,
		PathPrefix: b.Prefix,
		Mw:         b.Mw,
		Subrouter:  b.Subrouter,
		Register:   b.Register,
		PortSet:    b.Ports,
	}
}

// MountRoutes runs the register hook under the module prefix with the
// module middleware applied
func (m *Mounted) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.PathPrefix, func(rr httpkit.Router) {
		if m.Subrouter != nil {
			rr = m.Subrouter(rr)
		}
		if m.Register != nil {
			m.Register(rr)
		}
	}, m.Mw...)
}

// Name satisfies Module
func (m *Mounted) Name() string { return str.MustString(m.ModuleName, "module name") }

// Prefix reports the normalized route prefix
func (m *Mounted) Prefix() string { return str.MustPrefix(m.PathPrefix) }

// Middlewares reports the module middleware chain
func (m *Mounted) Middlewares() []func(http.Handler) http.Handler { return m.Mw }

// Ports satisfies Module
func (m *Mounted) Ports() any { return m.PortSet }
