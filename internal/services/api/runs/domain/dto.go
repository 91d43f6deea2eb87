// Package domain defines the runs API contracts
package domain

// RunSummary is one archived run in list form
type RunSummary struct {
	ID          string  `json:"id"           example:"0f1d3c2a-7c9e-4b1f-9a44-2f6f0f1d3c2a"`
	Accuracy    float64 `json:"accuracy"     example:"0.713"`
	EvalTotal   int     `json:"eval_total"   example:"359"`
	EvalCorrect int     `json:"eval_correct" example:"256"`
	MissCount   int     `json:"miss_count"   example:"103"`
	StartedAt   string  `json:"started_at"   example:"2025-06-01T12:00:00Z"`
	FinishedAt  string  `json:"finished_at"  example:"2025-06-01T12:00:41Z"`
}

// RunDetail is one archived run in full
type RunDetail struct {
	RunSummary

	TrainingFile    string `json:"training_file"    example:"data/train.csv"`
	TestFile        string `json:"test_file"        example:"data/test.csv"`
	TruthFile       string `json:"truth_file"       example:"data/truth.csv"`
	PredictionsFile string `json:"predictions_file" example:"results.csv"`
	AccuracyFile    string `json:"accuracy_file"    example:"accuracy.txt"`

	TrainedTotal    int `json:"trained_total"    example:"1600000"`
	TrainedPositive int `json:"trained_positive" example:"800000"`
	TrainedNegative int `json:"trained_negative" example:"800000"`
	VocabSize       int `json:"vocab_size"       example:"52714"`
	Predicted       int `json:"predicted"        example:"359"`

	Duration int64 `json:"duration_ms" example:"41000"`
}

// MissRow is one archived misclassification
type MissRow struct {
	Position  int    `json:"position"  example:"0"`
	Predicted string `json:"predicted" example:"4"`
	Actual    string `json:"actual"    example:"0"`
	TweetID   string `json:"tweet_id"  example:"2193580056"`
}

// LexiconRow is one archived vocabulary snapshot entry
type LexiconRow struct {
	Rank     int    `json:"rank"     example:"1"`
	Token    string `json:"token"    example:"good"`
	Positive int    `json:"positive" example:"912"`
	Negative int    `json:"negative" example:"44"`
	Weight   int    `json:"weight"   example:"868"`
}
