// Package http provides http transport for classify
package http

import (
	"net/http"
	"strconv"

	"vibecheck/internal/modkit/httpkit"
	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/net/middleware"
	"vibecheck/internal/services/api/classify/domain"
	svc "vibecheck/internal/services/api/classify/service"
)

// Register mounts classify endpoints on the given router
// admin gates the retrain route behind bearer auth
func Register(r httpkit.Router, s svc.Service, admin middleware.AuthPort) {
	h := &handlers{svc: s}

	// score one tweet
	httpkit.PostJSON[domain.ClassifyInput](r, "/", h.classify)

	// score a batch in input order
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)

	// strongest weighted tokens
	httpkit.Get(r, "/lexicon", h.lexicon)

	// serving model info
	httpkit.Get(r, "/model", h.model)

	httpkit.Protected(r, admin, func(pr httpkit.Router) {
		httpkit.Post(pr, "/retrain", h.retrain)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /classify Classify classifyOne
// @Summary Score one tweet
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyInput true "Tweet"
// @Success 200 {object} domain.ClassifyRow "ok"
// @Router /classify [post]
func (h *handlers) classify(r *http.Request, in domain.ClassifyInput) (any, error) {
	return h.svc.Classify(r.Context(), in)
}

// swagger:route POST /classify/batch Classify classifyBatch
// @Summary Score a batch of tweets
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Tweets"
// @Success 200 {array} domain.ClassifyRow "ok"
// @Router /classify/batch [post]
func (h *handlers) batch(r *http.Request, in domain.BatchInput) (any, error) {
	return h.svc.ClassifyBatch(r.Context(), in)
}

// swagger:route GET /classify/lexicon Classify classifyLexicon
// @Summary Strongest weighted vocabulary tokens
// @Tags Classify
// @Produce json
// @Param limit query int false "Max entries"
// @Success 200 {array} domain.LexiconRow "ok"
// @Router /classify/lexicon [get]
func (h *handlers) lexicon(r *http.Request) (any, error) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		return nil, err
	}
	return h.svc.Lexicon(r.Context(), limit)
}

// swagger:route GET /classify/model Classify classifyModel
// @Summary Serving model info
// @Tags Classify
// @Produce json
// @Success 200 {object} domain.ModelRow "ok"
// @Router /classify/model [get]
func (h *handlers) model(r *http.Request) (any, error) {
	return h.svc.Model(r.Context())
}

// swagger:route POST /classify/retrain Classify classifyRetrain
// @Summary Rebuild the serving model from the configured training file
// @Tags Classify
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.RetrainRow "ok"
// @Router /classify/retrain [post]
func (h *handlers) retrain(r *http.Request) (any, error) {
	return h.svc.Retrain(r.Context())
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
