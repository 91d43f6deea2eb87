// Package module wires classify into the API using modkit
package module

import (
	modkit "vibecheck/internal/modkit"
	"vibecheck/internal/modkit/httpkit"
	chttp "vibecheck/internal/services/api/classify/http"
	csvc "vibecheck/internal/services/api/classify/service"
	workerdom "vibecheck/internal/services/classify/domain"
)

// Ports declares the injected worker ports for this API module
type Ports struct {
	Scorer workerdom.ScorerPort
	Runner workerdom.RunnerPort
}

// Module serves the classify endpoints
type Module struct {
	modkit.Mounted
	svc csvc.Service
}

// New builds the classify API module. The worker ports arrive via
// WithPorts and must both be set.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	base := []modkit.Option{modkit.WithName("classify"), modkit.WithPrefix("/classify")}
	b := modkit.Build(append(base, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("classify module: expected WithPorts(classify/module.Ports)")
	}
	if ports.Scorer == nil || ports.Runner == nil {
		panic("classify module: Ports missing Scorer or Runner")
	}

	trainFile := deps.Cfg.Prefix("MODEL_").MayString("TRAIN_FILE", "")
	svc := csvc.New(ports.Scorer, ports.Runner, trainFile)

	// retrain stays admin only; an empty key rejects every caller
	key := deps.Cfg.Prefix("API_").MayString("KEY", "")
	admin := httpkit.NewPortFunc(httpkit.StaticKey(key, "admin"))

	m := &Module{Mounted: modkit.MountedFrom(b), svc: svc}
	m.PortSet = adaptClassifyPort{svc: svc}

	next := b.Register
	m.Register = func(r httpkit.Router) {
		chttp.Register(r, m.svc, admin)
		next(r)
	}
	return m
}
