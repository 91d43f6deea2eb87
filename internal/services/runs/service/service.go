// Package service contains the runs archive workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"vibecheck/internal/modkit/repokit"
	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/logger"
	"vibecheck/internal/platform/store"
	dom "vibecheck/internal/services/runs/domain"
	"vibecheck/internal/services/runs/repo"
)

// archiveAttempts bounds retries when the archive transaction loses to
// serialization contention from concurrent readers
const archiveAttempts = 3

// Config for the runs service
type Config struct {
	// HardLimit caps page sizes on reads
	HardLimit int

	// MissLimit caps how many misclassifications one run archives
	MissLimit int

	// LexiconLimit caps how many lexicon rows one run archives
	LexiconLimit int
}

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	Reads  repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	ch     store.Clickhouse
	Cfg    Config
}

// New constructs a runs service
//
// ch may be nil; the miss mirror is skipped then
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], ch store.Clickhouse, cfg Config) *Service {
	if db == nil {
		panic("runs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("runs.Service requires a non nil Storage binder")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	if cfg.MissLimit <= 0 {
		cfg.MissLimit = 1000
	}
	if cfg.LexiconLimit <= 0 {
		cfg.LexiconLimit = 100
	}
	return &Service{Reads: binder.Bind(db), binder: binder, db: db, ch: ch, Cfg: cfg}
}

// Archive implements domain.WriterPort
func (s *Service) Archive(ctx context.Context, w dom.RunWrite) (string, error) {
	id := uuid.NewString()

	run := dom.Run{
		ID:              id,
		TrainingFile:    w.TrainingFile,
		TestFile:        w.TestFile,
		TruthFile:       w.TruthFile,
		PredictionsFile: w.PredictionsFile,
		AccuracyFile:    w.AccuracyFile,
		TrainedTotal:    w.TrainedTotal,
		TrainedPositive: w.TrainedPositive,
		TrainedNegative: w.TrainedNegative,
		VocabSize:       w.VocabSize,
		Predicted:       w.Predicted,
		EvalTotal:       w.EvalTotal,
		EvalCorrect:     w.EvalCorrect,
		Accuracy:        w.Accuracy,
		MissCount:       w.MissCount,
		StartedAt:       w.StartedAt.UTC(),
		FinishedAt:      w.FinishedAt.UTC(),
	}
	if run.MissCount < len(w.Misses) {
		run.MissCount = len(w.Misses)
	}

	misses := w.Misses
	if len(misses) > s.Cfg.MissLimit {
		misses = misses[:s.Cfg.MissLimit]
	}
	lexicon := w.Lexicon
	if len(lexicon) > s.Cfg.LexiconLimit {
		lexicon = lexicon[:s.Cfg.LexiconLimit]
	}

	var err error
	for attempt := 1; attempt <= archiveAttempts; attempt++ {
		err = store.WithinRun(ctx, s.db, id, func(ctx context.Context, q store.RowQuerier) error {
			r := repokit.MustBind(s.binder, q)
			if err := r.InsertRun(ctx, run); err != nil {
				return err
			}
			if err := r.InsertMisses(ctx, id, misses); err != nil {
				return err
			}
			return r.InsertLexicon(ctx, id, lexicon)
		})
		if err == nil || !perr.Retryable(err) {
			break
		}
		logger.C(ctx).Warn().Err(err).Int("attempt", attempt).Str("run_id", id).
			Msg("archive transaction lost to contention, retrying")
	}
	if err != nil {
		return "", err
	}

	s.mirrorMisses(ctx, run, misses)
	return id, nil
}

// mirrorMisses fans archived misses out to clickhouse for offline slicing.
// Failures only warn; postgres already holds the rows
func (s *Service) mirrorMisses(ctx context.Context, run dom.Run, misses []dom.MissWrite) {
	if s.ch == nil || len(misses) == 0 {
		return
	}
	rows := make([][]any, 0, len(misses))
	for _, m := range misses {
		rows = append(rows, []any{
			run.ID, uint32(m.Position), uint8(m.Predicted), uint8(m.Actual), m.TweetID, run.FinishedAt,
		})
	}
	if err := s.ch.Insert(ctx, "run_misses", rows); err != nil {
		logger.C(ctx).Warn().Err(err).Str("run_id", run.ID).Msg("clickhouse miss mirror failed")
	}
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, limit, offset int) ([]dom.Run, int, error) {
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.Reads.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Reads.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id string) (dom.Run, error) {
	return s.Reads.Get(ctx, id)
}

// Misses implements domain.ReaderPort
func (s *Service) Misses(ctx context.Context, id string, limit, offset int) ([]dom.Miss, error) {
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.Reads.Misses(ctx, id, limit, offset)
}

// Lexicon implements domain.ReaderPort
func (s *Service) Lexicon(ctx context.Context, id string, limit int) ([]dom.LexiconEntry, error) {
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	return s.Reads.Lexicon(ctx, id, limit)
}

// Exists implements domain.ReaderPort
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.Reads.Exists(ctx, id)
}
