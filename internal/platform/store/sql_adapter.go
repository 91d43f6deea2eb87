package store

import (
	"context"
	"errors"
	"time"

	pnet "vibecheck/internal/platform/net"
	"vibecheck/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is the slice of pgx that the pool and an open tx share
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// tracedQuerier satisfies RowQuerier over any pgxQuerier, reporting each
// finished statement through the tracer
type tracedQuerier struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slowUS int64
}

func (t tracedQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	traceQuery(ctx, t.tracer, t.slowUS, sql, args, start, err)
	return cmdTag{ct}, err
}

func (t tracedQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	// traced at open; scan time is not included
	traceQuery(ctx, t.tracer, t.slowUS, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowSet{inner: rs}, nil
}

func (t tracedQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := t.q.QueryRow(ctx, sql, args...)
	// single-row queries trace after Scan so the event carries the scan error
	return hookedRow{
		inner: r,
		done: func(scanErr error) {
			traceQuery(ctx, t.tracer, t.slowUS, sql, args, start, scanErr)
		},
	}
}

// traceQuery reports one finished statement to the tracer, lifting the
// run and request ids off the context so scoped statements log with
// their scope. slowUS < 0 disables the slow flag entirely.
func traceQuery(ctx context.Context, tr pg.QueryTracer, slowUS int64, sql string, args []any, start time.Time, err error) {
	if tr == nil {
		return
	}
	elapsed := time.Since(start).Microseconds()
	runID, ok := RunID(ctx)
	if !ok {
		runID = pnet.RunID(ctx)
	}
	tr.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsed,
		Err:       err,
		Slow:      slowUS >= 0 && elapsed >= slowUS,
		RunID:     runID,
		RequestID: pnet.RequestID(ctx),
	})
}

// slowMicros converts the configured millisecond threshold; negative
// means slow marking is off
func slowMicros(ms int) int64 {
	if ms < 0 {
		return -1
	}
	return int64(ms) * 1000
}

// pgAdapter turns pg.PG into the RowQuerier/TxRunner seams. The embedded
// querier drives pooled statements; Tx wraps a fresh one around each
// open transaction.
type pgAdapter struct {
	tracedQuerier
	p *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		tracedQuerier: tracedQuerier{q: p.Pool, tracer: p.Tracer, slowUS: slowMicros(p.SlowMs)},
		p:             p,
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	q := tracedQuerier{q: tx, tracer: a.tracer, slowUS: a.slowUS}
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// thin pgx wrappers behind the store seams

// hookedRow runs done after Scan, carrying Scan's error to the tracer
type hookedRow struct {
	inner pgx.Row
	done  func(error)
}

func (r hookedRow) Scan(dst ...any) error {
	err := r.inner.Scan(dst...)
	if r.done != nil {
		r.done(err)
	}
	return err
}

type rowSet struct{ inner pgx.Rows }

func (r rowSet) Next() bool            { return r.inner.Next() }
func (r rowSet) Scan(dst ...any) error { return r.inner.Scan(dst...) }
func (r rowSet) Err() error            { return r.inner.Err() }
func (r rowSet) Close()                { r.inner.Close() }
func (r rowSet) Columns() []string {
	fields := r.inner.FieldDescriptions()
	out := make([]string, len(fields))
	for i := range fields {
		out[i] = string(fields[i].Name)
	}
	return out
}

type cmdTag struct{ inner pgconn.CommandTag }

func (t cmdTag) String() string      { return t.inner.String() }
func (t cmdTag) RowsAffected() int64 { return t.inner.RowsAffected() }
