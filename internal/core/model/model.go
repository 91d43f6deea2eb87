// Package model accumulates per-word sentiment counts from labeled token
// sequences and scores unlabeled ones against them. Scoring is a plain
// signed frequency difference with no smoothing or normalization; ties
// resolve to NEGATIVE
package model

import (
	"sort"

	"vibecheck/internal/core/text"
)

// Label is a sentiment classification. The numeric values match the wire
// digits of the corpus, 4 for positive and 0 for negative
type Label uint8

const (
	// Negative is the default classification; zero and unseen both land here
	Negative Label = 0
	// Positive is assigned only on a strictly positive score
	Positive Label = 4
)

// String renders the wire digit for the label, "4" or "0"
func (l Label) String() string {
	if l == Positive {
		return "4"
	}
	return "0"
}

// LabelFrom derives a label from a raw CSV label field. The field reads
// POSITIVE iff its first byte is '4'; anything else, including an empty or
// garbled field, degrades to NEGATIVE rather than erroring
func LabelFrom(raw text.Owned) Label {
	if raw.Len() > 0 && raw.At(0) == '4' {
		return Positive
	}
	return Negative
}

// FromScore maps a signed score to its label, POSITIVE only when strictly
// positive
func FromScore(score int) Label {
	if score > 0 {
		return Positive
	}
	return Negative
}

// Counts is one token's accumulated sentiment tally
type Counts struct {
	Positive int
	Negative int
}

// Entry is one token's row in a lexicon listing
type Entry struct {
	Token    string `json:"token"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Weight   int    `json:"weight"`
}

// Model maps case-normalized tokens to their counts and tracks how many
// records of each label it was trained on. Not safe for concurrent use;
// stages run sequentially on one instance
type Model struct {
	stats     map[string]Counts
	positives int
	negatives int
}

// New returns an empty model. Until trained it scores every sequence at
// zero, so it classifies everything NEGATIVE
func New() *Model {
	return &Model{stats: make(map[string]Counts)}
}

// Train folds one labeled token sequence into the stats and counts the
// record toward its label's tweet total. Tokens of a single byte are
// discarded as noise; longer ones are tallied under the record's label,
// with the entry created on first sight
func (m *Model) Train(tokens []text.Owned, label Label) {
	for _, tok := range tokens {
		if tok.Len() <= 1 {
			continue
		}
		key := tok.String()
		c := m.stats[key]
		if label == Positive {
			c.Positive++
		} else {
			c.Negative++
		}
		m.stats[key] = c
	}
	if label == Positive {
		m.positives++
	} else {
		m.negatives++
	}
}

// Score sums positive minus negative counts over the tokens present in the
// stats. Unknown tokens contribute nothing. Only training filters short
// tokens, so scoring may look them up and simply miss
func (m *Model) Score(tokens []text.Owned) int {
	score := 0
	for _, tok := range tokens {
		if c, ok := m.stats[tok.String()]; ok {
			score += c.Positive - c.Negative
		}
	}
	return score
}

// Predict labels a token sequence from its score
func (m *Model) Predict(tokens []text.Owned) Label {
	return FromScore(m.Score(tokens))
}

// Vocab returns the number of distinct tokens trained
func (m *Model) Vocab() int { return len(m.stats) }

// PositiveTweets returns how many positive records were trained
func (m *Model) PositiveTweets() int { return m.positives }

// NegativeTweets returns how many negative records were trained
func (m *Model) NegativeTweets() int { return m.negatives }

// Lookup returns the counts for one token and whether it is known
func (m *Model) Lookup(token string) (Counts, bool) {
	c, ok := m.stats[token]
	return c, ok
}

// Top returns the n heaviest lexicon entries ordered by absolute weight
// descending, ties broken by token ascending so listings are deterministic.
// n <= 0 or beyond the vocabulary returns everything
func (m *Model) Top(n int) []Entry {
	out := make([]Entry, 0, len(m.stats))
	for tok, c := range m.stats {
		out = append(out, Entry{
			Token:    tok,
			Positive: c.Positive,
			Negative: c.Negative,
			Weight:   c.Positive - c.Negative,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := abs(out[i].Weight), abs(out[j].Weight)
		if wi != wj {
			return wi > wj
		}
		return out[i].Token < out[j].Token
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
