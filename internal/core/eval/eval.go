// Package eval compares predicted labels against ground truth and tallies an
// accuracy report, keeping misclassifications in the order the truth records
// were seen
package eval

import "vibecheck/internal/core/model"

// Table maps record ids to their predicted labels. It is filled once during
// the prediction pass and only read during evaluation; ids are unique
type Table map[string]model.Label

// Miss is one misclassified record
type Miss struct {
	Predicted model.Label
	Actual    model.Label
	ID        string
}

// Report is the outcome of one evaluation pass
type Report struct {
	Total   int
	Correct int
	Misses  []Miss
}

// Accuracy returns correct over total. A pass that matched nothing reports
// 0; the caller is expected to surface a warning for that case
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Evaluator folds ground-truth records against a prediction table one at a
// time. Not safe for concurrent use
type Evaluator struct {
	table   Table
	total   int
	correct int
	misses  []Miss
}

// New returns an evaluator reading from table. A nil table is valid and
// matches nothing
func New(table Table) *Evaluator {
	return &Evaluator{table: table}
}

// Observe scores one ground-truth record. Ids absent from the table are
// skipped without counting; matches tally into total and either correct or
// the miss list
func (e *Evaluator) Observe(actual model.Label, id string) {
	pred, ok := e.table[id]
	if !ok {
		return
	}
	e.total++
	if pred == actual {
		e.correct++
		return
	}
	e.misses = append(e.misses, Miss{Predicted: pred, Actual: actual, ID: id})
}

// Report returns the tallies accumulated so far
func (e *Evaluator) Report() Report {
	return Report{Total: e.total, Correct: e.correct, Misses: e.misses}
}
