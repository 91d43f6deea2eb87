// Package record splits one CSV line into its fields. The splitter mirrors
// the corpus's loose dialect: a double quote toggles quoted mode and is itself
// dropped from the output, a comma outside quotes ends the current field, and
// every other byte is content. Doubled quotes are not collapsed, so malformed
// quoting degrades into merged or split fields rather than an error. Callers
// validate field counts before trusting a record
package record

import "vibecheck/internal/core/text"

// Split parses line (record terminator already stripped) into its ordered
// fields. Quote bytes are consumed, never copied into a field. The final
// field is always emitted, even when empty, so every line yields at least
// one field
func Split(line string) []text.Owned {
	fields := make([]text.Owned, 0, 8)
	cur := make([]byte, 0, 64)
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, text.FromBytes(cur))
			cur = cur[:0]
		default:
			cur = append(cur, c)
		}
	}
	return append(fields, text.FromBytes(cur))
}
