// Package http provides http transport for the runs archive
package http

import (
	"net/http"
	"strconv"

	"vibecheck/internal/modkit/httpkit"
	perr "vibecheck/internal/platform/errors"
	svc "vibecheck/internal/services/api/runs/service"
)

// Register mounts runs endpoints on the given router
// scope validates the {run} path param before run scoped handlers fire
func Register(r httpkit.Router, s svc.Service, scope httpkit.RunScopePort) {
	h := &handlers{svc: s}

	// archive listing, newest first
	httpkit.Get(r, "/", h.list)

	r.Route("/{run}", func(rr httpkit.Router) {
		rr.Use(httpkit.RunScoped(scope))
		httpkit.Get(rr, "/", h.get)
		httpkit.Get(rr, "/misses", h.misses)
		httpkit.Get(rr, "/lexicon", h.lexicon)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /runs Runs runsList
// @Summary List archived runs
// @Tags Runs
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} domain.RunSummary "ok"
// @Router /runs [get]
func (h *handlers) list(r *http.Request) (any, error) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		return nil, err
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		return nil, err
	}

	rows, total, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		return nil, err
	}

	page, size := 1, len(rows)
	if limit > 0 {
		size = limit
		page = offset/limit + 1
	}
	return httpkit.List(rows, total, page, size, ""), nil
}

// swagger:route GET /runs/{run} Runs runsGet
// @Summary One archived run in full
// @Tags Runs
// @Produce json
// @Param run path string true "Run id"
// @Success 200 {object} domain.RunDetail "ok"
// @Failure 404 {object} httpkit.Envelope "unknown run"
// @Router /runs/{run} [get]
func (h *handlers) get(r *http.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustRunID(r))
}

// swagger:route GET /runs/{run}/misses Runs runsMisses
// @Summary Misclassifications of one run in truth file order
// @Tags Runs
// @Produce json
// @Param run path string true "Run id"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} domain.MissRow "ok"
// @Router /runs/{run}/misses [get]
func (h *handlers) misses(r *http.Request) (any, error) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		return nil, err
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		return nil, err
	}
	return h.svc.Misses(r.Context(), httpkit.MustRunID(r), limit, offset)
}

// swagger:route GET /runs/{run}/lexicon Runs runsLexicon
// @Summary Vocabulary snapshot of one run, strongest tokens first
// @Tags Runs
// @Produce json
// @Param run path string true "Run id"
// @Param limit query int false "Max entries"
// @Success 200 {array} domain.LexiconRow "ok"
// @Router /runs/{run}/lexicon [get]
func (h *handlers) lexicon(r *http.Request) (any, error) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		return nil, err
	}
	return h.svc.Lexicon(r.Context(), httpkit.MustRunID(r), limit)
}

// intQuery reads an optional integer query param, 0 when absent
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, perr.InvalidArgf("%s must be an integer", name)
	}
	return n, nil
}
