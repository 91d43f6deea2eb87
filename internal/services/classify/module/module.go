// Package module assembles the classify service behind ports
package module

import (
	"vibecheck/internal/modkit"
	"vibecheck/internal/modkit/httpkit"
	"vibecheck/internal/services/classify/domain"
	"vibecheck/internal/services/classify/service"
)

// Ports is what other modules may borrow from classify
type Ports struct {
	Runner domain.RunnerPort
	Scorer domain.ScorerPort
}

// Module wires the classification service into the modkit registry
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New builds the module from config
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(service.Config{ProgressEvery: opts.ProgressEvery})

	return &Module{
		deps:  deps,
		ports: Ports{Runner: svc, Scorer: svc},
	}
}

// Name reports the module name used in the ports registry
func (m *Module) Name() string { return "classify" }

// Ports exposes the runner and scorer ports for other modules
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op; the classify HTTP surface is mounted by services/api
func (m *Module) MountRoutes(httpkit.Router) {}
