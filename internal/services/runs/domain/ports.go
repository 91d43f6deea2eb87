package domain

import "context"

// WriterPort archives finished runs
type WriterPort interface {
	// Archive persists the run with its misses and lexicon snapshot in one
	// transaction and returns the new run id
	Archive(ctx context.Context, w RunWrite) (string, error)
}

// ReaderPort reads the run archive
type ReaderPort interface {
	List(ctx context.Context, limit, offset int) ([]Run, int, error)
	Get(ctx context.Context, id string) (Run, error)
	Misses(ctx context.Context, id string, limit, offset int) ([]Miss, error)
	Lexicon(ctx context.Context, id string, limit int) ([]LexiconEntry, error)
	Exists(ctx context.Context, id string) (bool, error)
}
