// Package domain holds the classify service's types and ports
package domain

import (
	"time"

	"vibecheck/internal/core/model"
)

// Paths names the five files of one batch classification run
type Paths struct {
	Training    string
	Test        string
	Truth       string
	Predictions string
	Accuracy    string
}

// TrainResult summarizes one training pass over a labeled file
type TrainResult struct {
	// Records is the count of labeled tweets folded into the model
	Records  int
	Positive int
	Negative int

	// Skipped counts malformed lines dropped before training
	Skipped int

	// Vocab is the distinct token count after the pass
	Vocab int
}

// PredictResult summarizes one prediction pass over an unlabeled file
type PredictResult struct {
	Records int
	Skipped int
}

// Misclassification is one wrongly predicted tweet, in truth file order
type Misclassification struct {
	Predicted model.Label
	Actual    model.Label
	ID        string
}

// EvalResult summarizes one evaluation pass against ground truth
type EvalResult struct {
	Total    int
	Correct  int
	Accuracy float64
	Misses   []Misclassification
	Skipped  int

	// Unmatched reports that no truth id had a prediction, which
	// usually means the test and truth files do not belong together
	Unmatched bool
}

// RunReport gathers everything one batch run produced, for archiving
type RunReport struct {
	Paths      Paths
	Train      TrainResult
	Predict    PredictResult
	Eval       EvalResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Classification is one ad hoc scoring outcome
type Classification struct {
	Label  model.Label
	Score  int
	Tokens []string
}

// ModelInfo describes the model currently serving classifications
type ModelInfo struct {
	Vocab       int
	Positive    int
	Negative    int
	TrainedFrom string
	TrainedAt   time.Time
}
