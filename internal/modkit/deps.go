// Package modkit wires feature modules onto shared infrastructure
package modkit

import (
	"vibecheck/internal/modkit/repokit"
	"vibecheck/internal/platform/config"
	"vibecheck/internal/platform/logger"
	"vibecheck/internal/platform/store"
)

// Deps carries the shared dependencies every module receives. Plain
// wiring, no behavior lives here. The stores stay nil in CLI-only
// processes; modules nil check before touching them.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
