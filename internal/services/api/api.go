// Package api assembles the HTTP surface. Worker modules own the
// classifier and archive ports; API modules expose them as routes.
package api

import (
	"context"
	"net/http"

	"vibecheck/internal/platform/config"
	"vibecheck/internal/platform/logger"
	phttp "vibecheck/internal/platform/net/http"
	"vibecheck/internal/platform/net/middleware"
	"vibecheck/internal/platform/store"

	"vibecheck/internal/modkit"
	"vibecheck/internal/modkit/httpkit"
	"vibecheck/internal/modkit/module"
	"vibecheck/internal/modkit/swaggerkit"

	apiclassify "vibecheck/internal/services/api/classify/module"
	metamod "vibecheck/internal/services/api/meta/module"
	apiruns "vibecheck/internal/services/api/runs/module"

	workerclassify "vibecheck/internal/services/classify/module"
	workerruns "vibecheck/internal/services/runs/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds the worker and API modules and mounts everything under
// /api/v1. Panics when a configured model file cannot be trained; an
// API that advertises classification must come up serving it.
func Mount(r phttp.Router, opt Options) {
	l := opt.Logger
	if l == nil {
		l = logger.Get()
	}

	deps := modkit.Deps{
		Log: *l,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	mods := assemble(deps, l)

	httpkit.MountAPIV1(r, stack(opt.Config), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// ports go into the registry under the module name so the
			// API modules can be looked up by tooling later
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}

// assemble constructs the workers first so the API modules can borrow
// their ports, and returns everything in mount order
func assemble(deps modkit.Deps, l *logger.Logger) []module.Module {
	workerClassify := workerclassify.New(deps)
	cports := module.MustPortsOf[workerclassify.Ports](workerClassify)
	seedModel(deps, cports, l)

	workerRuns := workerruns.New(deps)
	rports := module.MustPortsOf[workerruns.Ports](workerRuns)

	apiClassify := apiclassify.New(deps, modkit.WithPorts(apiclassify.Ports{
		Scorer: cports.Scorer,
		Runner: cports.Runner,
	}))
	apiRuns := apiruns.New(deps, modkit.WithPorts(apiruns.Ports{
		Reader: rports.Reader,
	}))

	return []module.Module{
		metamod.New(deps),
		workerClassify,
		workerRuns,
		apiClassify,
		apiRuns,
	}
}

// seedModel trains the serving model from the configured file, if any
func seedModel(deps modkit.Deps, ports workerclassify.Ports, l *logger.Logger) {
	tf := workerclassify.FromConfig(deps.Cfg).TrainFile
	if tf == "" {
		return
	}
	res, err := ports.Runner.Train(context.Background(), tf)
	if err != nil {
		l.Panic().Err(err).Str("file", tf).Msg("model seed failed")
	}
	l.Info().
		Str("file", tf).
		Int("records", res.Records).
		Int("vocab", res.Vocab).
		Msg("model seeded")
}

// stack is the shared chain plus an optional in-flight cap from
// VIBECHECK_API_THROTTLE. Batch classification is CPU bound, so a
// deploy can bound how many requests run at once.
func stack(cfg config.Conf) []func(http.Handler) http.Handler {
	mw := httpkit.CommonStack()
	if n := cfg.Prefix("API_").MayInt("THROTTLE", 0); n > 0 {
		mw = append(mw, middleware.Throttle(n))
	}
	return mw
}
