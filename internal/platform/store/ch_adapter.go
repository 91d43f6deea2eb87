package store

import (
	"context"
	"errors"

	"vibecheck/internal/platform/store/ch"
)

// newCHAdapter narrows *ch.CH to the Clickhouse seam
func newCHAdapter(c *ch.CH) Clickhouse {
	return &chAdapter{inner: c}
}

type chAdapter struct {
	inner *ch.CH
}

var _ Clickhouse = (*chAdapter)(nil)

// Insert accepts row batches only; any other payload shape is a caller bug
func (a *chAdapter) Insert(ctx context.Context, table string, data any) error {
	rows, ok := data.([][]any)
	if !ok {
		return errors.New("store: clickhouse insert expects [][]any row batches")
	}
	return a.inner.Insert(ctx, table, rows)
}

func (a *chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &chRowsAdapter{inner: r}, nil
}

func (a *chAdapter) Close() error { return a.inner.Close() }

// Ping reports readiness through the driver. A nil adapter or client
// reports an error instead of panicking.
func (a *chAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

// chRowsAdapter bridges ch.Rows to the Rows seam, dropping the error from
// the driver's Close
type chRowsAdapter struct {
	inner ch.Rows
}

func (r *chRowsAdapter) Next() bool             { return r.inner.Next() }
func (r *chRowsAdapter) Scan(dest ...any) error { return r.inner.Scan(dest...) }
func (r *chRowsAdapter) Err() error             { return r.inner.Err() }
func (r *chRowsAdapter) Close()                 { _ = r.inner.Close() }
func (r *chRowsAdapter) Columns() []string      { return r.inner.Columns() }
