package domain

import (
	"context"

	"vibecheck/internal/core/model"
)

// RunnerPort drives the batch pipeline stages in order
type RunnerPort interface {
	// Train replaces the serving model with one built from the labeled file
	Train(ctx context.Context, path string) (TrainResult, error)

	// Predict classifies every tweet in the test file and writes one
	// "label,id" line per tweet to the output file
	Predict(ctx context.Context, testPath, outPath string) (PredictResult, error)

	// Evaluate compares the last prediction pass against the truth file and
	// writes the accuracy report to the output file
	Evaluate(ctx context.Context, truthPath, outPath string) (EvalResult, error)
}

// ScorerPort serves ad hoc classifications from the trained model
type ScorerPort interface {
	ClassifyText(ctx context.Context, raw string) Classification
	Lexicon(ctx context.Context, limit int) []model.Entry
	Info(ctx context.Context) ModelInfo
}
