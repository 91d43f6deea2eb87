package domain

import "context"

// ServicePort is the classify API surface
type ServicePort interface {
	Classify(ctx context.Context, in ClassifyInput) (ClassifyRow, error)
	ClassifyBatch(ctx context.Context, in BatchInput) ([]ClassifyRow, error)
	Lexicon(ctx context.Context, limit int) ([]LexiconRow, error)
	Model(ctx context.Context) (ModelRow, error)
	Retrain(ctx context.Context) (RetrainRow, error)
}
