// Package tokenize splits a text field into lowercase word tokens. The field
// is lowercased as a whole first, then scanned byte by byte against a fixed
// ASCII delimiter set; runs between delimiters become the tokens. Splitting
// is byte-oriented on purpose: multibyte sequences pass through untouched
// inside a token and never act as boundaries
package tokenize

import "vibecheck/internal/core/text"

// delimiters is the fixed boundary set: space plus ASCII punctuation,
// backtick included. Tabs and newlines are not boundaries
const delimiters = " ,.!?;:\"'()[]{}@#$%^&*-_=+<>/\\|~`"

var isDelim [256]bool

func init() {
	for i := 0; i < len(delimiters); i++ {
		isDelim[delimiters[i]] = true
	}
}

// Words lowercases field and splits it into its ordered tokens. Zero-length
// runs are never emitted, and a run ended by end-of-input still yields its
// token, so "great day" and "great day!" tokenize identically. The result
// may be empty
func Words(field text.Owned) []text.Owned {
	lowered := field.Lower()
	n := lowered.Len()

	var out []text.Owned
	start := -1 // first byte of the current run, -1 while between runs
	for i := 0; i < n; i++ {
		if isDelim[lowered.At(i)] {
			if start >= 0 {
				out = append(out, lowered.Substring(start, i-start))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, lowered.Substring(start, n-start))
	}
	return out
}
