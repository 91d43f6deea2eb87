package store

import "context"

// WithinRun wraps ctx with the run id and calls fn inside the provided
// TxRunner, so every statement of the archive transaction carries the run
func WithinRun(ctx context.Context, tx TxRunner, runID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithRunID(ctx, runID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
