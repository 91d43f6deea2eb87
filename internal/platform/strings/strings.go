// Package strings carries the string and slice defaults used at wiring time.
package strings

import std "strings"

// IfEmpty substitutes def when in has no elements.
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics when s is blank. name labels the panic so boot
// failures say which knob was missing.
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix canonicalizes a mount path: one leading slash, no trailing
// slash. Blank input and the bare root both panic since modules always
// mount under a named prefix.
func MustPrefix(s string) string {
	trimmed := std.Trim(std.TrimSpace(s), " /")
	if trimmed == "" {
		panic("root path is required")
	}
	return "/" + trimmed
}
