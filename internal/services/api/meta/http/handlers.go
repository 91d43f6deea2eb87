// Package http serves the operational meta endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"vibecheck/internal/core/version"
	"vibecheck/internal/modkit/httpkit"
)

// Pinger is the probe seam; both store adapters satisfy it
type Pinger interface {
	Ping(context.Context) error
}

// Deps carries what the handlers report on
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
}

// probeTimeout bounds the readiness pings
const probeTimeout = 2 * time.Second

type handlers struct {
	service string
	started time.Time
	pg      any
	ch      any
}

// Register mounts the probe and info routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{service: d.ServiceName, started: d.StartedAt, pg: d.PG, ch: d.CH}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.serviceInfo)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"vibecheck-api"`
	Started string `json:"started" example:"2026-08-01T09:00:00Z"`
	Now     string `json:"now" example:"2026-08-01T09:05:00Z"`
}

// @Summary Liveness check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.service,
		Started: stamp(h.started),
		Now:     stamp(time.Now()),
	}, nil
}

// ReadyCheck reports one dependency probe
type ReadyCheck struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok"` // one of ok, fail, skipped, unknown
	Error  string `json:"error,omitempty" example:"dial timeout"`
}

// ReadyResponse summarizes readiness across the storage backends
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // one of ok, degraded, fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now" example:"2026-08-01T09:05:00Z"`
}

// probe pings one dependency. Absent adapters read as skipped so a
// PG-only deploy still answers.
func probe(ctx context.Context, name string, dep any) ReadyCheck {
	out := ReadyCheck{Name: name, Status: "skipped"}
	if dep == nil {
		return out
	}
	p, ok := dep.(Pinger)
	if !ok {
		out.Status = "unknown"
		return out
	}
	out.Status = "ok"
	if err := p.Ping(ctx); err != nil {
		out.Status = "fail"
		out.Error = err.Error()
	}
	return out
}

// overall folds check statuses. Failures win and skipped probes are
// neutral, so a deploy without the optional mirror still reads ok.
func overall(checks []ReadyCheck) string {
	status := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			return "fail"
		case "ok", "skipped":
		default:
			status = "degraded"
		}
	}
	return status
}

// @Summary Readiness with per backend probes
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	checks := []ReadyCheck{
		probe(ctx, "pg", h.pg),
		probe(ctx, "ch", h.ch),
	}

	return ReadyResponse{
		Status: overall(checks),
		Checks: checks,
		Now:    stamp(time.Now()),
	}, nil
}

// @Summary Build metadata
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// ServiceResponse describes the running service
type ServiceResponse struct {
	Name    string `json:"name" example:"vibecheck-api"`
	Started string `json:"started" example:"2026-08-01T09:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
	// Secured lists "METHOD /path" for every route behind bearer auth
	Secured []string `json:"secured_routes"`
}

// @Summary Service identity and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) serviceInfo(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.service,
		Started: stamp(h.started),
		Uptime:  int64(time.Since(h.started) / time.Second),
		Secured: httpkit.SecuredPaths(),
	}, nil
}
