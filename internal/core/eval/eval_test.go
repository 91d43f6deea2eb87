package eval

import (
	"math"
	"testing"

	"vibecheck/internal/core/model"
)

func TestEvaluatorTallies(t *testing.T) {
	table := Table{
		"id1": model.Positive,
		"id2": model.Negative,
		"id3": model.Positive,
	}
	e := New(table)
	e.Observe(model.Positive, "id1") // correct
	e.Observe(model.Positive, "id2") // miss: predicted negative, actually positive
	e.Observe(model.Negative, "id3") // miss: predicted positive, actually negative
	e.Observe(model.Positive, "id9") // never predicted, skipped

	r := e.Report()
	if r.Total != 3 || r.Correct != 1 {
		t.Fatalf("Report = %d/%d, want 1 correct of 3", r.Correct, r.Total)
	}
	if got := r.Accuracy(); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("Accuracy() = %v, want 1/3", got)
	}

	want := []Miss{
		{Predicted: model.Negative, Actual: model.Positive, ID: "id2"},
		{Predicted: model.Positive, Actual: model.Negative, ID: "id3"},
	}
	if len(r.Misses) != len(want) {
		t.Fatalf("Misses = %v, want %v", r.Misses, want)
	}
	for i := range want {
		if r.Misses[i] != want[i] {
			t.Fatalf("Misses[%d] = %+v, want %+v", i, r.Misses[i], want[i])
		}
	}
}

func TestMissesKeepEncounterOrder(t *testing.T) {
	table := Table{"b": model.Positive, "a": model.Positive, "c": model.Positive}
	e := New(table)
	// all wrong, observed in b a c order; the report must not sort them
	e.Observe(model.Negative, "b")
	e.Observe(model.Negative, "a")
	e.Observe(model.Negative, "c")

	r := e.Report()
	ids := []string{}
	for _, m := range r.Misses {
		ids = append(ids, m.ID)
	}
	if len(ids) != 3 || ids[0] != "b" || ids[1] != "a" || ids[2] != "c" {
		t.Fatalf("miss order = %v, want [b a c]", ids)
	}
}

func TestZeroMatchesReportsZeroAccuracy(t *testing.T) {
	e := New(Table{"x": model.Positive})
	e.Observe(model.Positive, "unknown")

	r := e.Report()
	if r.Total != 0 {
		t.Fatalf("Total = %d, want 0", r.Total)
	}
	if got := r.Accuracy(); got != 0 {
		t.Fatalf("Accuracy() = %v, want 0", got)
	}
}

func TestNilTableMatchesNothing(t *testing.T) {
	e := New(nil)
	e.Observe(model.Positive, "id1")
	if r := e.Report(); r.Total != 0 || len(r.Misses) != 0 {
		t.Fatalf("nil table produced tallies: %+v", r)
	}
}

func TestPerfectRun(t *testing.T) {
	table := Table{"id1": model.Positive, "id2": model.Negative}
	e := New(table)
	e.Observe(model.Positive, "id1")
	e.Observe(model.Negative, "id2")

	r := e.Report()
	if r.Accuracy() != 1.0 {
		t.Fatalf("Accuracy() = %v, want 1.0", r.Accuracy())
	}
	if len(r.Misses) != 0 {
		t.Fatalf("Misses = %v, want none", r.Misses)
	}
}
