// Package store opens the storage backends and narrows them to small seams.
// Repos program against the interfaces here, never against driver types.
package store

import (
	"context"
	"errors"
	"fmt"

	"vibecheck/internal/platform/logger"
)

// Row is the scan contract for a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is the iteration contract for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports the outcome of a write statement
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repos read and write through
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner adds transactional execution on top of RowQuerier
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam for mirror writes and analytics reads
type Clickhouse interface {
	Insert(ctx context.Context, table string, data any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger marks seams that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Store bundles whichever backends the config enabled.
// Disabled seams stay nil and the zero value is inert.
type Store struct {
	// Log feeds the subclients; the zero logger discards everything
	Log logger.Logger

	// PG is the relational seam, nil when postgres is disabled
	PG TxRunner

	// CH is the columnar seam, nil when clickhouse is disabled
	CH Clickhouse
}

// Open applies opts and connects the backends cfg enables.
// The first backend that fails to come up aborts the whole call.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}

	// normalize the zero logger so subclients never nil check
	s.Log = s.Log.With().Logger()

	var err error
	if cfg.PG.Enabled {
		if s.PG, err = openPG(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	if cfg.CH.Enabled {
		if s.CH, err = openCH(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Guard pings every seam that can report readiness and joins the failures.
// Seams that do not implement Pinger pass by default.
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, probe := range []struct {
		name string
		seam any
	}{
		{"pg", s.PG},
		{"ch", s.CH},
	} {
		if err := pingSeam(ctx, probe.name, probe.seam); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func pingSeam(ctx context.Context, name string, seam any) error {
	if seam == nil {
		return nil
	}
	p, ok := seam.(Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Close shuts down whichever backends were opened. Nil seams are skipped.
func (s *Store) Close(_ context.Context) error {
	var errs []error
	if s.CH != nil {
		if err := s.CH.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if pgc, ok := s.PG.(interface{ Close() error }); ok {
		if err := pgc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
