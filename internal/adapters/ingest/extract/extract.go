// Package extract maps parsed dataset records to classifier samples
package extract

import (
	"vibecheck/internal/core/model"
	"vibecheck/internal/core/text"
)

// Column layouts per file kind. Training and ground truth intentionally
// disagree on where the label and id live; both orders are preserved.
const (
	trainMinFields = 6
	trainLabelIdx  = 0
	trainIDIdx     = 1
	trainTextIdx   = 5

	testMinFields = 5
	testIDIdx     = 0
	testTextIdx   = 4

	truthMinFields = 2
	truthLabelIdx  = 0
	truthIDIdx     = 1
)

// TrainingSample is one labeled tweet from the training set
type TrainingSample struct {
	Label model.Label
	ID    string
	Text  text.Owned
}

// TestSample is one unlabeled tweet from the test set
type TestSample struct {
	ID   string
	Text text.Owned
}

// TruthRow pairs a ground-truth label with the tweet id it judges
type TruthRow struct {
	Label model.Label
	ID    string
}

// TrainingFrom maps one parsed record to a training sample.
// Records with fewer than 6 fields report ok=false and are skipped by callers
func TrainingFrom(fields []text.Owned) (TrainingSample, bool) {
	if len(fields) < trainMinFields {
		return TrainingSample{}, false
	}
	return TrainingSample{
		Label: model.LabelFrom(fields[trainLabelIdx]),
		ID:    fields[trainIDIdx].String(),
		Text:  fields[trainTextIdx],
	}, true
}

// TestFrom maps one parsed record to a test sample.
// Records with fewer than 5 fields report ok=false
func TestFrom(fields []text.Owned) (TestSample, bool) {
	if len(fields) < testMinFields {
		return TestSample{}, false
	}
	return TestSample{
		ID:   fields[testIDIdx].String(),
		Text: fields[testTextIdx],
	}, true
}

// TruthFrom maps one parsed record to a ground-truth row.
// Records with fewer than 2 fields report ok=false
func TruthFrom(fields []text.Owned) (TruthRow, bool) {
	if len(fields) < truthMinFields {
		return TruthRow{}, false
	}
	return TruthRow{
		Label: model.LabelFrom(fields[truthLabelIdx]),
		ID:    fields[truthIDIdx].String(),
	}, true
}
