package model

import (
	"testing"

	"vibecheck/internal/core/text"
)

func toks(words ...string) []text.Owned {
	out := make([]text.Owned, len(words))
	for i, w := range words {
		out[i] = text.New(w)
	}
	return out
}

func TestLabelFrom(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Label
	}{
		{name: "four is positive", in: "4", want: Positive},
		{name: "zero is negative", in: "0", want: Negative},
		{name: "first byte decides", in: "4abc", want: Positive},
		{name: "two is negative", in: "2", want: Negative},
		{name: "empty degrades to negative", in: "", want: Negative},
		{name: "garbage degrades to negative", in: "x4", want: Negative},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := LabelFrom(text.New(tc.in)); got != tc.want {
				t.Fatalf("LabelFrom(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLabelString(t *testing.T) {
	if Positive.String() != "4" || Negative.String() != "0" {
		t.Fatalf("labels render %q/%q, want 4/0", Positive.String(), Negative.String())
	}
}

func TestTrainCountsAndFilter(t *testing.T) {
	m := New()
	m.Train(toks("great", "a", "day"), Positive)
	m.Train(toks("bad", "b"), Negative)

	if m.Vocab() != 3 {
		t.Fatalf("Vocab() = %d, want 3 (single-byte tokens discarded)", m.Vocab())
	}
	if m.PositiveTweets() != 1 || m.NegativeTweets() != 1 {
		t.Fatalf("tweet totals = %d/%d, want 1/1", m.PositiveTweets(), m.NegativeTweets())
	}

	c, ok := m.Lookup("great")
	if !ok || c.Positive != 1 || c.Negative != 0 {
		t.Fatalf("Lookup(great) = %+v ok=%v, want {1 0} true", c, ok)
	}
	if _, ok := m.Lookup("a"); ok {
		t.Fatalf("single-byte token must not enter the stats")
	}
}

func TestTrainEmptySequenceStillCountsRecord(t *testing.T) {
	m := New()
	m.Train(nil, Positive)
	if m.PositiveTweets() != 1 {
		t.Fatalf("PositiveTweets() = %d, want 1", m.PositiveTweets())
	}
	if m.Vocab() != 0 {
		t.Fatalf("Vocab() = %d, want 0", m.Vocab())
	}
}

func TestScoreAndPredict(t *testing.T) {
	m := New()
	m.Train(toks("great", "great", "fine"), Positive)
	m.Train(toks("bad", "fine"), Negative)

	tests := []struct {
		name  string
		in    []text.Owned
		score int
		want  Label
	}{
		{name: "positive word wins", in: toks("great"), score: 2, want: Positive},
		{name: "negative word loses", in: toks("bad"), score: -1, want: Negative},
		{name: "balanced word ties to negative", in: toks("fine"), score: 0, want: Negative},
		{name: "unseen word ties to negative", in: toks("unseen"), score: 0, want: Negative},
		{name: "sum across tokens", in: toks("great", "bad"), score: 1, want: Positive},
		{name: "empty sequence", in: nil, score: 0, want: Negative},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Score(tc.in); got != tc.score {
				t.Fatalf("Score = %d, want %d", got, tc.score)
			}
			if got := m.Predict(tc.in); got != tc.want {
				t.Fatalf("Predict = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUntrainedModelIsAlwaysNegative(t *testing.T) {
	m := New()
	for _, in := range [][]text.Owned{nil, toks("anything"), toks("at", "all")} {
		if got := m.Predict(in); got != Negative {
			t.Fatalf("untrained Predict(%v) = %v, want Negative", in, got)
		}
	}
}

func TestTop(t *testing.T) {
	m := New()
	m.Train(toks("love", "love", "love"), Positive)
	m.Train(toks("hate", "hate"), Negative)
	m.Train(toks("meh"), Positive)
	m.Train(toks("meh"), Negative)

	got := m.Top(2)
	if len(got) != 2 {
		t.Fatalf("Top(2) returned %d entries", len(got))
	}
	if got[0].Token != "love" || got[0].Weight != 3 {
		t.Fatalf("Top[0] = %+v, want love with weight 3", got[0])
	}
	if got[1].Token != "hate" || got[1].Weight != -2 {
		t.Fatalf("Top[1] = %+v, want hate with weight -2", got[1])
	}

	// n beyond the vocabulary returns everything, with zero-weight entries
	// ordered after the weighted ones
	all := m.Top(0)
	if len(all) != 3 {
		t.Fatalf("Top(0) returned %d entries, want 3", len(all))
	}
	if all[2].Token != "meh" || all[2].Weight != 0 {
		t.Fatalf("Top[2] = %+v, want meh with weight 0", all[2])
	}
}
