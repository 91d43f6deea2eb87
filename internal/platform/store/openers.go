package store

import (
	"context"
	"fmt"
	"time"

	chx "vibecheck/internal/platform/store/ch"
	"vibecheck/internal/platform/store/pg"
)

// pg ping retry budget; generous because compose brings postgres up in parallel
const (
	pgPingAttempts = 20
	pgPingTimeout  = 3 * time.Second
	pgBackoffStart = 150 * time.Millisecond
	pgBackoffCap   = 2 * time.Second
)

// openPG connects the pool, waits until it answers pings and wraps it in
// the sql adapter. The adapter is only built once the pool is healthy.
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = pgPingAttempts
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = pgPingTimeout
	}
	if err := waitForPG(ctx, p, attempts, timeout); err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

// waitForPG pings the raw pool with backoff until it answers or the budget
// runs out. Going through the pool directly keeps retry noise out of the
// SQL trace.
func waitForPG(ctx context.Context, p *pg.PG, attempts int, timeout time.Duration) error {
	var lastErr error
	backoff := pgBackoffStart
	for range attempts {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = p.Pool.Ping(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < pgBackoffCap {
			backoff = min(backoff*2, pgBackoffCap)
		}
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

// openCH dials clickhouse and wraps it in the columnar adapter. The native
// driver connects lazily, so failures tend to surface on first use instead.
func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, App: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
