// Package domain defines the classify API contracts
package domain

// ClassifyInput is one tweet to score
type ClassifyInput struct {
	Text string `json:"text" validate:"required,max=2000" example:"what a good day"`
}

// ClassifyRow is one scored tweet
type ClassifyRow struct {
	Label  string   `json:"label"  example:"4"`
	Score  int      `json:"score"  example:"3"`
	Tokens []string `json:"tokens"`
}

// BatchInput scores several tweets in one call
type BatchInput struct {
	Texts []string `json:"texts" validate:"required,min=1,max=256,dive,required,max=2000"`
}

// LexiconRow is one vocabulary entry with its training counts
type LexiconRow struct {
	Token    string `json:"token"    example:"good"`
	Positive int    `json:"positive" example:"9"`
	Negative int    `json:"negative" example:"1"`
	Weight   int    `json:"weight"   example:"8"`
}

// ModelRow describes the serving model
type ModelRow struct {
	Vocab       int    `json:"vocab"           example:"52714"`
	Positive    int    `json:"positive_tweets" example:"800000"`
	Negative    int    `json:"negative_tweets" example:"800000"`
	TrainedFrom string `json:"trained_from,omitempty" example:"data/train.csv"`
	TrainedAt   string `json:"trained_at,omitempty"   example:"2025-06-01T12:00:00Z"`
}

// RetrainRow reports a finished retrain pass
type RetrainRow struct {
	File     string `json:"file"     example:"data/train.csv"`
	Records  int    `json:"records"  example:"1600000"`
	Positive int    `json:"positive" example:"800000"`
	Negative int    `json:"negative" example:"800000"`
	Skipped  int    `json:"skipped"  example:"12"`
	Vocab    int    `json:"vocab"    example:"52714"`
}
