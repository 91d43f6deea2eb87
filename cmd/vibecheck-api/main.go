// @title         Vibecheck API
// @version       1.0.0
// @description   Sentiment classification and run archive endpoints

package main

import (
	"context"
	"os/signal"
	"syscall"

	"vibecheck/internal/modkit/repokit"
	"vibecheck/internal/platform/config"
	"vibecheck/internal/platform/logger"
	phttp "vibecheck/internal/platform/net/http"
	"vibecheck/internal/platform/store"

	"vibecheck/internal/services/api"
)

func main() {
	// every knob lives under VIBECHECK_*
	vcCfg := config.New().Prefix("VIBECHECK_")
	apiCfg := vcCfg.Prefix("API_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, storeConfig(vcCfg), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store unavailable")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("store close")
		}
	}()

	// refuse to come up with a half-reachable store
	repokit.MustGuard(ctx, st)

	// listen addr from VIBECHECK_API_PORT, default :4000
	srv := phttp.NewServer(vcCfg)

	api.Mount(srv.Router(), api.Options{
		Config:         vcCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", true),
	})

	// SIGINT or SIGTERM drains in-flight requests before main returns
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("server exited")
	}
}

// storeConfig reads the Postgres and optional ClickHouse knobs from
// VIBECHECK_PGSQL_* and VIBECHECK_CH_*
func storeConfig(cfg config.Conf) store.Config {
	pg := cfg.Prefix("PGSQL_")
	ch := cfg.Prefix("CH_")
	return store.Config{
		AppName: "vibecheck-api",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pg.MustString("DBURL"),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled: ch.MayBool("ENABLED", false),
			URL:     ch.MayString("DBURL", ""),
			Role:    "api",
		},
	}
}
