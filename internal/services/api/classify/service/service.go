// Package service contains classify API workflows
package service

import (
	"context"
	"time"

	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/services/api/classify/domain"
	workerdom "vibecheck/internal/services/classify/domain"
)

// Service defines the classify API service contract
type Service interface {
	domain.ServicePort
}

// DefaultLexiconLimit bounds lexicon responses when no limit is given
const DefaultLexiconLimit = 50

// Svc implements the classify API service
type Svc struct {
	scorer    workerdom.ScorerPort
	runner    workerdom.RunnerPort
	trainFile string
}

// New constructs a classify API service
//
// trainFile names the labeled file Retrain reads; empty disables Retrain
func New(scorer workerdom.ScorerPort, runner workerdom.RunnerPort, trainFile string) *Svc {
	if scorer == nil {
		panic("classify.Service requires a non nil ScorerPort")
	}
	if runner == nil {
		panic("classify.Service requires a non nil RunnerPort")
	}
	return &Svc{scorer: scorer, runner: runner, trainFile: trainFile}
}

// Classify scores one tweet
func (s *Svc) Classify(ctx context.Context, in domain.ClassifyInput) (domain.ClassifyRow, error) {
	return s.row(s.scorer.ClassifyText(ctx, in.Text)), nil
}

// ClassifyBatch scores several tweets, preserving input order
func (s *Svc) ClassifyBatch(ctx context.Context, in domain.BatchInput) ([]domain.ClassifyRow, error) {
	out := make([]domain.ClassifyRow, 0, len(in.Texts))
	for _, raw := range in.Texts {
		out = append(out, s.row(s.scorer.ClassifyText(ctx, raw)))
	}
	return out, nil
}

// Lexicon returns the strongest weighted tokens of the serving model
func (s *Svc) Lexicon(ctx context.Context, limit int) ([]domain.LexiconRow, error) {
	if limit <= 0 || limit > 1000 {
		limit = DefaultLexiconLimit
	}
	entries := s.scorer.Lexicon(ctx, limit)
	out := make([]domain.LexiconRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.LexiconRow{
			Token:    e.Token,
			Positive: e.Positive,
			Negative: e.Negative,
			Weight:   e.Weight,
		})
	}
	return out, nil
}

// Model describes the serving model
func (s *Svc) Model(ctx context.Context) (domain.ModelRow, error) {
	info := s.scorer.Info(ctx)
	row := domain.ModelRow{
		Vocab:       info.Vocab,
		Positive:    info.Positive,
		Negative:    info.Negative,
		TrainedFrom: info.TrainedFrom,
	}
	if !info.TrainedAt.IsZero() {
		row.TrainedAt = info.TrainedAt.UTC().Format(time.RFC3339)
	}
	return row, nil
}

// Retrain rebuilds the serving model from the configured training file
func (s *Svc) Retrain(ctx context.Context) (domain.RetrainRow, error) {
	if s.trainFile == "" {
		return domain.RetrainRow{}, perr.InvalidArgf("no training file configured")
	}
	res, err := s.runner.Train(ctx, s.trainFile)
	if err != nil {
		return domain.RetrainRow{}, err
	}
	return domain.RetrainRow{
		File:     s.trainFile,
		Records:  res.Records,
		Positive: res.Positive,
		Negative: res.Negative,
		Skipped:  res.Skipped,
		Vocab:    res.Vocab,
	}, nil
}

func (s *Svc) row(c workerdom.Classification) domain.ClassifyRow {
	return domain.ClassifyRow{
		Label:  c.Label.String(),
		Score:  c.Score,
		Tokens: c.Tokens,
	}
}
