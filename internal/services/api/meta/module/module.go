// Package module wires the meta surface into the API
package module

import (
	"time"

	modkit "vibecheck/internal/modkit"
	"vibecheck/internal/modkit/httpkit"

	metahttp "vibecheck/internal/services/api/meta/http"
)

// Module serves the operational endpoints under /meta
type Module struct {
	modkit.Mounted
	startedAt time.Time
}

// New builds the meta module. Options may override the name and prefix.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	base := []modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}
	b := modkit.Build(append(base, opts...)...)

	m := &Module{
		Mounted:   modkit.MountedFrom(b),
		startedAt: time.Now(),
	}
	m.Register = m.mountMeta(deps, b.Register)
	return m
}

// mountMeta registers the meta handlers, then whatever register hook the
// caller supplied through options
func (m *Module) mountMeta(deps modkit.Deps, next func(httpkit.Router)) func(httpkit.Router) {
	return func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "vibecheck-api",
			StartedAt:   m.startedAt,
			PG:          deps.PG,
			CH:          deps.CH,
		})
		next(r)
	}
}
