// Package service contains runs API workflows
package service

import (
	"context"
	"strconv"
	"time"

	"vibecheck/internal/services/api/runs/domain"
	runsdom "vibecheck/internal/services/runs/domain"
)

// Service defines the runs API service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the runs API service over the archive reader
type Svc struct {
	reader runsdom.ReaderPort
}

// New constructs a runs API service
func New(reader runsdom.ReaderPort) *Svc {
	if reader == nil {
		panic("runs.Service requires a non nil ReaderPort")
	}
	return &Svc{reader: reader}
}

// List returns archived runs, newest first, with the total count
func (s *Svc) List(ctx context.Context, limit, offset int) ([]domain.RunSummary, int, error) {
	rows, total, err := s.reader.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.RunSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, summary(r))
	}
	return out, total, nil
}

// Get returns one archived run in full
func (s *Svc) Get(ctx context.Context, id string) (domain.RunDetail, error) {
	r, err := s.reader.Get(ctx, id)
	if err != nil {
		return domain.RunDetail{}, err
	}
	return domain.RunDetail{
		RunSummary:      summary(r),
		TrainingFile:    r.TrainingFile,
		TestFile:        r.TestFile,
		TruthFile:       r.TruthFile,
		PredictionsFile: r.PredictionsFile,
		AccuracyFile:    r.AccuracyFile,
		TrainedTotal:    r.TrainedTotal,
		TrainedPositive: r.TrainedPositive,
		TrainedNegative: r.TrainedNegative,
		VocabSize:       r.VocabSize,
		Predicted:       r.Predicted,
		Duration:        r.FinishedAt.Sub(r.StartedAt).Milliseconds(),
	}, nil
}

// Misses returns archived misclassifications in truth file order
func (s *Svc) Misses(ctx context.Context, id string, limit, offset int) ([]domain.MissRow, error) {
	rows, err := s.reader.Misses(ctx, id, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MissRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.MissRow{
			Position:  m.Position,
			Predicted: strconv.Itoa(m.Predicted),
			Actual:    strconv.Itoa(m.Actual),
			TweetID:   m.TweetID,
		})
	}
	return out, nil
}

// Lexicon returns the archived vocabulary snapshot, strongest first
func (s *Svc) Lexicon(ctx context.Context, id string, limit int) ([]domain.LexiconRow, error) {
	rows, err := s.reader.Lexicon(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.LexiconRow, 0, len(rows))
	for _, e := range rows {
		out = append(out, domain.LexiconRow{
			Rank:     e.Rank,
			Token:    e.Token,
			Positive: e.Positive,
			Negative: e.Negative,
			Weight:   e.Weight,
		})
	}
	return out, nil
}

func summary(r runsdom.Run) domain.RunSummary {
	return domain.RunSummary{
		ID:          r.ID,
		Accuracy:    r.Accuracy,
		EvalTotal:   r.EvalTotal,
		EvalCorrect: r.EvalCorrect,
		MissCount:   r.MissCount,
		StartedAt:   r.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:  r.FinishedAt.UTC().Format(time.RFC3339),
	}
}
