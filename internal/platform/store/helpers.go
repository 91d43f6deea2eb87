package store

import (
	"context"
	"errors"
	"fmt"

	perr "vibecheck/internal/platform/errors"
)

// Query helpers over the RowQuerier seam. Repos hand in a typed scan
// function; the helpers own iteration, close and the not-found sentinel.

// Exec runs a write and hands back the command tag untouched
func Exec(ctx context.Context, q RowQuerier, sql string, args ...any) (CommandTag, error) {
	return q.Exec(ctx, sql, args...)
}

// ExecOne runs a write that must touch exactly one row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return fmt.Errorf("exec affected %d rows, want 1", n)
	}
	return nil
}

// Scalar reads the first column of the first row into T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// errTooManyRows trips when a single-row read matched more than one
var errTooManyRows = errors.New("query returned more than one row")

// One maps exactly one row through scan. An empty set returns
// perr.ErrNotFound; callers check that with errors.Is before any rewrap.
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var (
		item  T
		found bool
	)
	err := eachRow(ctx, q, sql, args, func(r Row) error {
		if found {
			return errTooManyRows
		}
		var scanErr error
		item, scanErr = scan(r)
		found = scanErr == nil
		return scanErr
	})
	if err == nil && !found {
		err = perr.ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Many maps every row through scan into a slice; an empty set is just
// an empty slice
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	var out []T
	err := eachRow(ctx, q, sql, args, func(r Row) error {
		item, scanErr := scan(r)
		if scanErr != nil {
			return scanErr
		}
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// eachRow owns the query, iteration and close lifecycle and hands each
// position to fn through the narrow Row seam
func eachRow(ctx context.Context, q RowQuerier, sql string, args []any, fn func(Row) error) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	cur := rowCursor{rows: rows}
	for rows.Next() {
		if err := fn(cur); err != nil {
			return err
		}
	}
	return rows.Err()
}

// rowCursor reads the current Rows position through the Row interface
type rowCursor struct{ rows Rows }

func (c rowCursor) Scan(dest ...any) error { return c.rows.Scan(dest...) }
