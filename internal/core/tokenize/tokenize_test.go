package tokenize

import (
	"testing"

	"vibecheck/internal/core/text"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercase and strip punctuation",
			in:   "Hello, World!!",
			want: []string{"hello", "world"},
		},
		{
			name: "trailing token without delimiter",
			in:   "great day",
			want: []string{"great", "day"},
		},
		{
			name: "trailing delimiter changes nothing",
			in:   "great day!",
			want: []string{"great", "day"},
		},
		{
			name: "delimiters only",
			in:   `...!!! ?? ~ () [] {}`,
			want: nil,
		},
		{
			name: "empty field",
			in:   "",
			want: nil,
		},
		{
			name: "apostrophe splits contractions",
			in:   "Don't stop",
			want: []string{"don", "t", "stop"},
		},
		{
			name: "hyphen and underscore split",
			in:   "well-known snake_case",
			want: []string{"well", "known", "snake", "case"},
		},
		{
			name: "at signs and hashes split handles and tags",
			in:   "@user loves #golang",
			want: []string{"user", "loves", "golang"},
		},
		{
			name: "backtick is a boundary",
			in:   "a`b",
			want: []string{"a", "b"},
		},
		{
			name: "tab is not a boundary",
			in:   "one\ttwo",
			want: []string{"one\ttwo"},
		},
		{
			name: "multibyte passes through inside a token",
			in:   "Caf\xc3\xa9 time",
			want: []string{"caf\xc3\xa9", "time"},
		},
		{
			name: "runs of delimiters collapse",
			in:   "so,,  good...really",
			want: []string{"so", "good", "really"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Words(text.New(tc.in))
			if len(got) != len(tc.want) {
				t.Fatalf("Words(%q) yielded %d tokens %v, want %d %v",
					tc.in, len(got), strs(got), len(tc.want), tc.want)
			}
			for i := range got {
				if got[i].String() != tc.want[i] {
					t.Fatalf("Words(%q)[%d] = %q, want %q", tc.in, i, got[i].String(), tc.want[i])
				}
			}
		})
	}
}

func strs(ts []text.Owned) []string {
	out := make([]string, len(ts))
	for i, v := range ts {
		out[i] = v.String()
	}
	return out
}
