package module

import (
	"context"

	"vibecheck/internal/services/api/classify/domain"
	csvc "vibecheck/internal/services/api/classify/service"
)

// adaptClassifyPort exposes service methods as module ports for cross-module usage
type adaptClassifyPort struct{ svc csvc.Service }

func (a adaptClassifyPort) Classify(ctx context.Context, in domain.ClassifyInput) (domain.ClassifyRow, error) {
	return a.svc.Classify(ctx, in)
}

func (a adaptClassifyPort) ClassifyBatch(ctx context.Context, in domain.BatchInput) ([]domain.ClassifyRow, error) {
	return a.svc.ClassifyBatch(ctx, in)
}

func (a adaptClassifyPort) Model(ctx context.Context) (domain.ModelRow, error) {
	return a.svc.Model(ctx)
}
