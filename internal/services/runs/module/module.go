// Package module assembles the runs archive service behind ports
package module

import (
	"vibecheck/internal/modkit"
	"vibecheck/internal/modkit/httpkit"
	"vibecheck/internal/services/runs/domain"
	"vibecheck/internal/services/runs/repo"
	"vibecheck/internal/services/runs/service"
)

// Ports is what other modules may borrow from runs
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Module wires the archive service into the modkit registry
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New builds the module from config plus the shared store handles
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(deps.PG, repo.NewPG(), deps.CH, service.Config{
		HardLimit:    opts.HardLimit,
		MissLimit:    opts.MissLimit,
		LexiconLimit: opts.LexiconLimit,
	})

	return &Module{
		deps:  deps,
		ports: Ports{Writer: svc, Reader: svc},
	}
}

// Name reports the module name used in the ports registry
func (m *Module) Name() string { return "runs" }

// Ports exposes the writer and reader ports for other modules
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op; the runs HTTP surface is mounted by services/api
func (m *Module) MountRoutes(httpkit.Router) {}
