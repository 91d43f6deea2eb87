package domain

import "context"

// ServicePort is the runs API surface
type ServicePort interface {
	List(ctx context.Context, limit, offset int) ([]RunSummary, int, error)
	Get(ctx context.Context, id string) (RunDetail, error)
	Misses(ctx context.Context, id string, limit, offset int) ([]MissRow, error)
	Lexicon(ctx context.Context, id string, limit int) ([]LexiconRow, error)
}
