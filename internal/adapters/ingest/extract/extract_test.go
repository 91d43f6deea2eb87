package extract

import (
	"testing"

	"vibecheck/internal/core/model"
	"vibecheck/internal/core/record"
)

func TestTrainingFrom_MapsLabelIDAndText(t *testing.T) {
	t.Parallel()

	fields := record.Split(`4,1467810369,Mon Apr 06,NO_QUERY,someuser,"good vibes, honestly"`)
	s, ok := TrainingFrom(fields)
	if !ok {
		t.Fatalf("expected ok for a 6-field record")
	}
	if s.Label != model.Positive {
		t.Fatalf("label: want Positive, got %v", s.Label)
	}
	if s.ID != "1467810369" {
		t.Fatalf("id: want 1467810369, got %q", s.ID)
	}
	if got := s.Text.String(); got != "good vibes, honestly" {
		t.Fatalf("text: want %q, got %q", "good vibes, honestly", got)
	}
}

func TestTrainingFrom_NonFourLabelIsNegative(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"0", "2", "banana", ""} {
		fields := record.Split(raw + ",id9,date,q,u,meh")
		s, ok := TrainingFrom(fields)
		if !ok {
			t.Fatalf("label %q: expected ok", raw)
		}
		if s.Label != model.Negative {
			t.Fatalf("label %q: want Negative, got %v", raw, s.Label)
		}
	}
}

func TestTrainingFrom_ShortRecordSkipped(t *testing.T) {
	t.Parallel()

	if _, ok := TrainingFrom(record.Split("4,id,date,q,u")); ok {
		t.Fatalf("expected skip for a 5-field training record")
	}
	if _, ok := TrainingFrom(record.Split("")); ok {
		t.Fatalf("expected skip for an empty line")
	}
}

func TestTestFrom_MapsIDAndText(t *testing.T) {
	t.Parallel()

	fields := record.Split("321,Sat May 16,NO_QUERY,other,this one is fine")
	s, ok := TestFrom(fields)
	if !ok {
		t.Fatalf("expected ok for a 5-field record")
	}
	if s.ID != "321" {
		t.Fatalf("id: want 321, got %q", s.ID)
	}
	if got := s.Text.String(); got != "this one is fine" {
		t.Fatalf("text: want %q, got %q", "this one is fine", got)
	}
}

func TestTestFrom_ShortRecordSkipped(t *testing.T) {
	t.Parallel()

	if _, ok := TestFrom(record.Split("321,date,q,u")); ok {
		t.Fatalf("expected skip for a 4-field test record")
	}
}

func TestTruthFrom_LabelThenID(t *testing.T) {
	t.Parallel()

	// ground truth flips the order: label first, id second
	s, ok := TruthFrom(record.Split("4,321"))
	if !ok {
		t.Fatalf("expected ok for a 2-field record")
	}
	if s.Label != model.Positive {
		t.Fatalf("label: want Positive, got %v", s.Label)
	}
	if s.ID != "321" {
		t.Fatalf("id: want 321, got %q", s.ID)
	}

	// extra columns are ignored, not an error
	if _, ok := TruthFrom(record.Split("0,99,trailing,junk")); !ok {
		t.Fatalf("expected ok for a wider truth record")
	}
}

func TestTruthFrom_ShortRecordSkipped(t *testing.T) {
	t.Parallel()

	if _, ok := TruthFrom(record.Split("4")); ok {
		t.Fatalf("expected skip for a 1-field truth record")
	}
}
