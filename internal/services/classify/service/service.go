// Package service implements the classify service
package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"vibecheck/internal/adapters/ingest/csvfile"
	"vibecheck/internal/adapters/ingest/extract"
	"vibecheck/internal/core/eval"
	"vibecheck/internal/core/model"
	"vibecheck/internal/core/record"
	"vibecheck/internal/core/text"
	"vibecheck/internal/core/tokenize"
	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/logger"
	"vibecheck/internal/services/classify/domain"
)

// Config for the classify service
type Config struct {
	// ProgressEvery emits a progress log after this many records, 0 disables
	ProgressEvery int
}

// Service implements domain.RunnerPort and domain.ScorerPort
//
// The model pointer is swapped whole on a successful Train, so readers
// always see either the previous model or the new one, never a half
// built pass
type Service struct {
	cfg Config

	mu          sync.RWMutex
	mdl         *model.Model
	preds       eval.Table
	trainedFrom string
	trainedAt   time.Time
}

// New constructs a classify service with an empty model
func New(cfg Config) *Service {
	if cfg.ProgressEvery < 0 {
		cfg.ProgressEvery = 0
	}
	return &Service{cfg: cfg, mdl: model.New()}
}

// Train builds a fresh model from the labeled file at path and swaps it in.
// The previous model keeps serving until the pass succeeds
func (s *Service) Train(ctx context.Context, path string) (domain.TrainResult, error) {
	l := logger.C(ctx)

	rd, err := csvfile.Open(path)
	if err != nil {
		return domain.TrainResult{}, err
	}
	defer func() { _ = rd.Close() }()

	next := model.New()
	var res domain.TrainResult

	err = eachRecord(ctx, rd, func(fields []text.Owned) {
		sample, ok := extract.TrainingFrom(fields)
		if !ok {
			res.Skipped++
			return
		}
		label := sample.Label
		next.Train(tokenize.Words(sample.Text), label)
		res.Records++
		if label == model.Positive {
			res.Positive++
		} else {
			res.Negative++
		}
		if s.cfg.ProgressEvery > 0 && res.Records%s.cfg.ProgressEvery == 0 {
			l.Info().Int("records", res.Records).Int("vocab", next.Vocab()).Msg("training progress")
		}
	})
	if err != nil {
		return domain.TrainResult{}, err
	}
	res.Vocab = next.Vocab()

	s.mu.Lock()
	s.mdl = next
	s.preds = nil
	s.trainedFrom = path
	s.trainedAt = time.Now().UTC()
	s.mu.Unlock()

	lines, bytes := rd.Stats()
	l.Info().
		Str("file", path).
		Int("lines", lines).
		Int64("bytes", bytes).
		Int("records", res.Records).
		Int("positive", res.Positive).
		Int("negative", res.Negative).
		Int("skipped", res.Skipped).
		Int("vocab", res.Vocab).
		Msg("training pass complete")
	return res, nil
}

// Predict classifies every tweet in the test file, writes "label,id" lines
// to outPath, and remembers the predictions for the next Evaluate
func (s *Service) Predict(ctx context.Context, testPath, outPath string) (domain.PredictResult, error) {
	l := logger.C(ctx)

	s.mu.RLock()
	mdl := s.mdl
	s.mu.RUnlock()

	rd, err := csvfile.Open(testPath)
	if err != nil {
		return domain.PredictResult{}, err
	}
	defer func() { _ = rd.Close() }()

	out, err := os.Create(outPath)
	if err != nil {
		return domain.PredictResult{}, perr.IOf("classify: create %s: %v", outPath, err)
	}
	w := bufio.NewWriter(out)

	table := make(eval.Table)
	var res domain.PredictResult

	err = eachRecord(ctx, rd, func(fields []text.Owned) {
		sample, ok := extract.TestFrom(fields)
		if !ok {
			res.Skipped++
			return
		}
		label := mdl.Predict(tokenize.Words(sample.Text))
		table[sample.ID] = label
		fmt.Fprintf(w, "%s,%s\n", label, sample.ID)
		res.Records++
	})
	if err != nil {
		_ = out.Close()
		return domain.PredictResult{}, err
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return domain.PredictResult{}, perr.IOf("classify: write %s: %v", outPath, err)
	}
	if err := out.Close(); err != nil {
		return domain.PredictResult{}, perr.IOf("classify: close %s: %v", outPath, err)
	}

	s.mu.Lock()
	s.preds = table
	s.mu.Unlock()

	l.Info().
		Str("file", testPath).
		Str("out", outPath).
		Int("records", res.Records).
		Int("skipped", res.Skipped).
		Msg("prediction pass complete")
	return res, nil
}

// Evaluate compares the last prediction pass against the truth file and
// writes the accuracy report to outPath
func (s *Service) Evaluate(ctx context.Context, truthPath, outPath string) (domain.EvalResult, error) {
	l := logger.C(ctx)

	s.mu.RLock()
	table := s.preds
	s.mu.RUnlock()

	rd, err := csvfile.Open(truthPath)
	if err != nil {
		return domain.EvalResult{}, err
	}
	defer func() { _ = rd.Close() }()

	ev := eval.New(table)
	var res domain.EvalResult

	err = eachRecord(ctx, rd, func(fields []text.Owned) {
		row, ok := extract.TruthFrom(fields)
		if !ok {
			res.Skipped++
			return
		}
		ev.Observe(row.Label, row.ID)
	})
	if err != nil {
		return domain.EvalResult{}, err
	}

	rep := ev.Report()
	res.Total = rep.Total
	res.Correct = rep.Correct
	res.Accuracy = rep.Accuracy()
	res.Unmatched = rep.Total == 0
	res.Misses = make([]domain.Misclassification, 0, len(rep.Misses))
	for _, ms := range rep.Misses {
		res.Misses = append(res.Misses, domain.Misclassification{
			Predicted: ms.Predicted,
			Actual:    ms.Actual,
			ID:        ms.ID,
		})
	}

	out, err := os.Create(outPath)
	if err != nil {
		return domain.EvalResult{}, perr.IOf("classify: create %s: %v", outPath, err)
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%.3f\n", res.Accuracy)
	for _, ms := range res.Misses {
		fmt.Fprintf(w, "%s,%s,%s\n", ms.Predicted, ms.Actual, ms.ID)
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return domain.EvalResult{}, perr.IOf("classify: write %s: %v", outPath, err)
	}
	if err := out.Close(); err != nil {
		return domain.EvalResult{}, perr.IOf("classify: close %s: %v", outPath, err)
	}

	if res.Unmatched {
		l.Warn().Str("file", truthPath).Msg("no truth ids matched a prediction")
	}
	l.Info().
		Str("file", truthPath).
		Str("out", outPath).
		Int("total", res.Total).
		Int("correct", res.Correct).
		Int("misses", len(res.Misses)).
		Float64("accuracy", res.Accuracy).
		Msg("evaluation pass complete")
	return res, nil
}

// ClassifyText scores one raw tweet with the serving model
func (s *Service) ClassifyText(ctx context.Context, raw string) domain.Classification {
	_ = ctx

	s.mu.RLock()
	mdl := s.mdl
	s.mu.RUnlock()

	toks := tokenize.Words(text.New(raw))
	out := domain.Classification{
		Score:  mdl.Score(toks),
		Tokens: make([]string, 0, len(toks)),
	}
	out.Label = model.FromScore(out.Score)
	for _, t := range toks {
		// echo only the tokens the model can count; single-byte ones
		// are discarded as noise at training time
		if t.Len() <= 1 {
			continue
		}
		out.Tokens = append(out.Tokens, t.String())
	}
	return out
}

// Lexicon returns the strongest weighted tokens of the serving model
func (s *Service) Lexicon(ctx context.Context, limit int) []model.Entry {
	_ = ctx

	s.mu.RLock()
	mdl := s.mdl
	s.mu.RUnlock()
	return mdl.Top(limit)
}

// Info describes the serving model
func (s *Service) Info(ctx context.Context) domain.ModelInfo {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ModelInfo{
		Vocab:       s.mdl.Vocab(),
		Positive:    s.mdl.PositiveTweets(),
		Negative:    s.mdl.NegativeTweets(),
		TrainedFrom: s.trainedFrom,
		TrainedAt:   s.trainedAt,
	}
}

// eachRecord streams rd, discards the header line, splits each remaining
// line into fields, and hands them to fn. Stops early when ctx is done
func eachRecord(ctx context.Context, rd *csvfile.Reader, fn func(fields []text.Owned)) error {
	// the first line is a header in every dataset format we accept
	if _, err := rd.Next(); err != nil {
		if err == io.EOF {
			return nil
		}
		return perr.IOf("classify: read header: %v", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return perr.IOf("classify: read line: %v", err)
		}
		fn(record.Split(line))
	}
}
