package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// sqlSeam satisfies TxRunner without Pinger; pingingSQL layers Ping on top
type sqlSeam struct{}

func (sqlSeam) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (sqlSeam) Query(context.Context, string, ...any) (Rows, error)     { return nil, nil }
func (sqlSeam) QueryRow(context.Context, string, ...any) Row            { return nil }
func (sqlSeam) Tx(context.Context, func(q RowQuerier) error) error      { return nil }

type pingingSQL struct {
	sqlSeam
	err error
}

func (p pingingSQL) Ping(context.Context) error { return p.err }

// colSeam satisfies Clickhouse without Pinger; pingingCol layers Ping on top
type colSeam struct{}

func (colSeam) Insert(context.Context, string, any) error           { return nil }
func (colSeam) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (colSeam) Close() error                                        { return nil }

type pingingCol struct {
	colSeam
	err error
}

func (p pingingCol) Ping(context.Context) error { return p.err }

func TestGuard_NilStore(t *testing.T) {
	t.Parallel()

	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatal("want error for nil store")
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		store *Store
		want  []string // error substrings; empty means Guard passes
	}{
		{name: "no seams", store: &Store{}},
		{name: "pg without ping is skipped", store: &Store{PG: sqlSeam{}}},
		{name: "ch without ping is skipped", store: &Store{CH: colSeam{}}},
		{name: "healthy pg", store: &Store{PG: pingingSQL{}}},
		{name: "healthy both", store: &Store{PG: pingingSQL{}, CH: pingingCol{}}},
		{
			name:  "pg failure carries prefix",
			store: &Store{PG: pingingSQL{err: errors.New("pool exhausted")}},
			want:  []string{"pg: pool exhausted"},
		},
		{
			name:  "ch failure carries prefix",
			store: &Store{CH: pingingCol{err: errors.New("dial refused")}},
			want:  []string{"ch: dial refused"},
		},
		{
			name: "both failures joined",
			store: &Store{
				PG: pingingSQL{err: errors.New("pg down")},
				CH: pingingCol{err: errors.New("ch down")},
			},
			want: []string{"pg: pg down", "ch: ch down"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.store.Guard(context.Background())
			if len(tc.want) == 0 {
				if err != nil {
					t.Fatalf("Guard: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Guard returned nil, want error")
			}
			for _, sub := range tc.want {
				if !strings.Contains(err.Error(), sub) {
					t.Errorf("error %q missing %q", err.Error(), sub)
				}
			}
		})
	}
}
