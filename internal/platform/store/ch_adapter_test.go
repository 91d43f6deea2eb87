package store

import (
	"context"
	"testing"

	"vibecheck/internal/platform/store/ch"
)

type stubCHRows struct {
	closed bool
}

func (s *stubCHRows) Next() bool             { return false }
func (s *stubCHRows) Scan(dest ...any) error { return nil }
func (s *stubCHRows) Err() error             { return nil }
func (s *stubCHRows) Close() error           { s.closed = true; return nil }
func (s *stubCHRows) Columns() []string      { return []string{"mood", "total"} }

var _ ch.Rows = (*stubCHRows)(nil)

func TestCHRowsAdapter_Delegates(t *testing.T) {
	t.Parallel()

	stub := &stubCHRows{}
	r := &chRowsAdapter{inner: stub}

	if cols := r.Columns(); len(cols) != 2 || cols[0] != "mood" || cols[1] != "total" {
		t.Fatalf("Columns = %#v", cols)
	}
	if r.Next() {
		t.Fatal("Next should report the stub's empty set")
	}
	var v int
	if err := r.Scan(&v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	r.Close()
	if !stub.closed {
		t.Fatal("Close did not reach the driver rows")
	}
}

func TestCHAdapter_InsertShape(t *testing.T) {
	t.Parallel()

	a := newCHAdapter(&ch.CH{})

	if err := a.Insert(context.Background(), "classifier_runs", "nope"); err == nil {
		t.Fatal("want error for a non-batch payload")
	}
	// empty batches pass through as a no-op
	if err := a.Insert(context.Background(), "classifier_runs", [][]any{}); err != nil {
		t.Fatalf("Insert with empty batch: %v", err)
	}
}

func TestCHAdapter_PingNilSafe(t *testing.T) {
	t.Parallel()

	var a *chAdapter
	if err := a.Ping(context.Background()); err == nil {
		t.Fatal("Ping on nil adapter should error")
	}
	if err := (&chAdapter{}).Ping(context.Background()); err == nil {
		t.Fatal("Ping without a client should error")
	}
}

func TestCHAdapter_CloseUnopened(t *testing.T) {
	t.Parallel()

	if err := newCHAdapter(&ch.CH{}).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
