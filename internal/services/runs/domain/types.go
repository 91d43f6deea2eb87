// Package domain holds the runs archive types and ports
package domain

import "time"

// Run is one archived batch classification run
type Run struct {
	ID              string
	TrainingFile    string
	TestFile        string
	TruthFile       string
	PredictionsFile string
	AccuracyFile    string

	TrainedTotal    int
	TrainedPositive int
	TrainedNegative int
	VocabSize       int

	Predicted int

	EvalTotal   int
	EvalCorrect int
	Accuracy    float64
	MissCount   int

	StartedAt  time.Time
	FinishedAt time.Time
}

// RunWrite carries everything one finished run wants archived
type RunWrite struct {
	TrainingFile    string
	TestFile        string
	TruthFile       string
	PredictionsFile string
	AccuracyFile    string

	TrainedTotal    int
	TrainedPositive int
	TrainedNegative int
	VocabSize       int

	Predicted int

	EvalTotal   int
	EvalCorrect int
	Accuracy    float64

	// MissCount is the full misclassification count even when the
	// archived Misses slice is capped
	MissCount int

	StartedAt  time.Time
	FinishedAt time.Time

	Misses  []MissWrite
	Lexicon []LexiconWrite
}

// MissWrite is one misclassification to archive
//
// Position preserves the truth file encounter order; labels carry the
// wire digits 4 and 0
type MissWrite struct {
	Position  int
	Predicted int
	Actual    int
	TweetID   string
}

// Miss is one archived misclassification read back out
type Miss struct {
	Position  int
	Predicted int
	Actual    int
	TweetID   string
}

// LexiconWrite is one model vocabulary snapshot row to archive
type LexiconWrite struct {
	Rank     int
	Token    string
	Positive int
	Negative int
	Weight   int
}

// LexiconEntry is one archived vocabulary row read back out
type LexiconEntry struct {
	Rank     int
	Token    string
	Positive int
	Negative int
	Weight   int
}
