// Package module wires the runs archive into the API using modkit
package module

import (
	"net/http"

	"github.com/google/uuid"

	modkit "vibecheck/internal/modkit"
	"vibecheck/internal/modkit/httpkit"
	perr "vibecheck/internal/platform/errors"
	rhttp "vibecheck/internal/services/api/runs/http"
	rsvc "vibecheck/internal/services/api/runs/service"
	runsdom "vibecheck/internal/services/runs/domain"
)

// Ports declares the injected worker ports for this API module
type Ports struct {
	Reader runsdom.ReaderPort
}

// Module serves the run archive endpoints
type Module struct {
	modkit.Mounted
	svc rsvc.Service
}

// New builds the runs API module around the injected Reader port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	base := []modkit.Option{modkit.WithName("runs"), modkit.WithPrefix("/runs")}
	b := modkit.Build(append(base, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("runs module: expected WithPorts(runs/module.Ports)")
	}
	if ports.Reader == nil {
		panic("runs module: Ports missing Reader")
	}

	svc := rsvc.New(ports.Reader)
	scope := scopePort{reader: ports.Reader}

	m := &Module{Mounted: modkit.MountedFrom(b), svc: svc}

	next := b.Register
	m.Register = func(r httpkit.Router) {
		rhttp.Register(r, m.svc, scope)
		next(r)
	}
	return m
}

// scopePort rejects malformed or unknown run ids before handlers see them
type scopePort struct {
	reader runsdom.ReaderPort
}

func (p scopePort) Validate(r *http.Request, runID string) error {
	if uuid.Validate(runID) != nil {
		return perr.InvalidArgf("run id must be a uuid")
	}
	ok, err := p.reader.Exists(r.Context(), runID)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("run %s not found", runID)
	}
	return nil
}
