// Package repo provides the runs repository implementation
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vibecheck/internal/modkit/repokit"
	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/store"
	"vibecheck/internal/services/runs/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the runs repository
type Storage interface {
	InsertRun(ctx context.Context, r domain.Run) error
	InsertMisses(ctx context.Context, runID string, xs []domain.MissWrite) error
	InsertLexicon(ctx context.Context, runID string, xs []domain.LexiconWrite) error
	List(ctx context.Context, limit, offset int) ([]domain.Run, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id string) (domain.Run, error)
	Misses(ctx context.Context, id string, limit, offset int) ([]domain.Miss, error)
	Lexicon(ctx context.Context, id string, limit int) ([]domain.LexiconEntry, error)
	Exists(ctx context.Context, id string) (bool, error)
}

const runColumns = `
	id::text, training_file, test_file, truth_file, predictions_file, accuracy_file,
	trained_total, trained_positive, trained_negative, vocab_size,
	predicted, eval_total, eval_correct, accuracy, miss_count,
	started_at, finished_at`

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, r domain.Run) error {
	const sql = `INSERT INTO runs
		(id, training_file, test_file, truth_file, predictions_file, accuracy_file,
		trained_total, trained_positive, trained_negative, vocab_size,
		predicted, eval_total, eval_correct, accuracy, miss_count,
		started_at, finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	err := store.ExecOne(ctx, s.q, sql,
		r.ID, r.TrainingFile, r.TestFile, r.TruthFile, r.PredictionsFile, r.AccuracyFile,
		r.TrainedTotal, r.TrainedPositive, r.TrainedNegative, r.VocabSize,
		r.Predicted, r.EvalTotal, r.EvalCorrect, r.Accuracy, r.MissCount,
		r.StartedAt, r.FinishedAt,
	)
	return perr.FromPostgres(err, "insert run")
}

// InsertMisses implements Storage
func (s *pg) InsertMisses(ctx context.Context, runID string, xs []domain.MissWrite) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO run_misses
		(run_id, position, predicted, actual, tweet_id) VALUES `)

	args := make([]any, 0, len(xs)*5)
	for i, m := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*5 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4)
		args = append(args, runID, m.Position, m.Predicted, m.Actual, m.TweetID)
	}
	// Idempotent when an archive retries under the same run id
	sb.WriteString(` ON CONFLICT (run_id, position) DO NOTHING`)
	_, err := store.Exec(ctx, s.q, sb.String(), args...)
	return perr.FromPostgres(err, "insert run misses")
}

// InsertLexicon implements Storage
func (s *pg) InsertLexicon(ctx context.Context, runID string, xs []domain.LexiconWrite) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO run_lexicon
		(run_id, rank, token, positive, negative, weight) VALUES `)

	args := make([]any, 0, len(xs)*6)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*6 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5)
		args = append(args, runID, e.Rank, e.Token, e.Positive, e.Negative, e.Weight)
	}
	sb.WriteString(` ON CONFLICT (run_id, rank) DO NOTHING`)
	_, err := store.Exec(ctx, s.q, sb.String(), args...)
	return perr.FromPostgres(err, "insert run lexicon")
}

// List implements Storage, newest runs first
func (s *pg) List(ctx context.Context, limit, offset int) ([]domain.Run, error) {
	sql := `SELECT` + runColumns + `
		FROM runs
		ORDER BY started_at DESC, id
		LIMIT $1 OFFSET $2`
	out, err := store.Many(ctx, s.q, scanRun, sql, limit, offset)
	return out, perr.FromPostgres(err, "list runs")
}

// Count implements Storage
func (s *pg) Count(ctx context.Context) (int, error) {
	n, err := store.Scalar[int](ctx, s.q, `SELECT count(*) FROM runs`)
	return n, perr.FromPostgres(err, "count runs")
}

// Get implements Storage
func (s *pg) Get(ctx context.Context, id string) (domain.Run, error) {
	sql := `SELECT` + runColumns + `
		FROM runs
		WHERE id = $1::uuid`
	r, err := store.One(ctx, s.q, scanRun, sql, id)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Run{}, perr.NotFoundf("run %s not found", id)
		}
		return domain.Run{}, perr.FromPostgres(err, "get run")
	}
	return r, nil
}

// Misses implements Storage, rows come back in truth file order
func (s *pg) Misses(ctx context.Context, id string, limit, offset int) ([]domain.Miss, error) {
	const sql = `SELECT position, predicted, actual, tweet_id
		FROM run_misses
		WHERE run_id = $1::uuid
		ORDER BY position
		LIMIT $2 OFFSET $3`
	out, err := store.Many(ctx, s.q, func(r store.Row) (domain.Miss, error) {
		var m domain.Miss
		err := r.Scan(&m.Position, &m.Predicted, &m.Actual, &m.TweetID)
		return m, err
	}, sql, id, limit, offset)
	return out, perr.FromPostgres(err, "list run misses")
}

// Lexicon implements Storage, strongest tokens first
func (s *pg) Lexicon(ctx context.Context, id string, limit int) ([]domain.LexiconEntry, error) {
	const sql = `SELECT rank, token, positive, negative, weight
		FROM run_lexicon
		WHERE run_id = $1::uuid
		ORDER BY rank
		LIMIT $2`
	out, err := store.Many(ctx, s.q, func(r store.Row) (domain.LexiconEntry, error) {
		var e domain.LexiconEntry
		err := r.Scan(&e.Rank, &e.Token, &e.Positive, &e.Negative, &e.Weight)
		return e, err
	}, sql, id, limit)
	return out, perr.FromPostgres(err, "read run lexicon")
}

// Exists implements Storage
func (s *pg) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := store.Scalar[bool](ctx, s.q,
		`SELECT EXISTS (SELECT 1 FROM runs WHERE id = $1::uuid)`, id)
	return ok, perr.FromPostgres(err, "run exists")
}

func scanRun(r store.Row) (domain.Run, error) {
	var run domain.Run
	err := r.Scan(
		&run.ID, &run.TrainingFile, &run.TestFile, &run.TruthFile, &run.PredictionsFile, &run.AccuracyFile,
		&run.TrainedTotal, &run.TrainedPositive, &run.TrainedNegative, &run.VocabSize,
		&run.Predicted, &run.EvalTotal, &run.EvalCorrect, &run.Accuracy, &run.MissCount,
		&run.StartedAt, &run.FinishedAt,
	)
	return run, err
}
