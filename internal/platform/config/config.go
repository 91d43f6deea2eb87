// Package config reads application settings from environment variables
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"vibecheck/internal/platform/logger"
)

// Conf is a prefixed window onto the environment. A root Conf sees every
// variable; Prefix("API_") narrows the view so callers ask for "PORT" and
// read API_PORT. Prefixes stack, which is how module scopes nest under the
// service scope.
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix appends p to the current prefix and returns the narrowed view
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key expands a caller key to the full env var name
func (c Conf) key(k string) string { return c.prefix + k }

// lookup fetches the trimmed value; whitespace-only counts as unset
func (c Conf) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(c.key(key)))
}

// mustLookup is lookup with a panic when the variable is unset
func (c Conf) mustLookup(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("required env var is not set")
	}
	return v
}

// failParse reports a present-but-unparsable required value and panics
func (c Conf) failParse(key, value, msg string) {
	logger.Get().Panic().Str("key", c.key(key)).Str("value", value).Msg(msg)
}

// MustString returns the value, panicking when unset
func (c Conf) MustString(key string) string { return c.mustLookup(key) }

// MustInt returns the value parsed as an int, panicking when unset or malformed
func (c Conf) MustInt(key string) int {
	s := c.mustLookup(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.failParse(key, s, "value is not an integer")
	}
	return v
}

// MustBool returns the value parsed as a bool, panicking when unset or malformed
func (c Conf) MustBool(key string) bool {
	s := c.mustLookup(key)
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.failParse(key, s, "value is not a boolean")
	}
	return v
}

// MustDuration returns the value parsed with time.ParseDuration,
// panicking when unset or malformed
func (c Conf) MustDuration(key string) time.Duration {
	s := c.mustLookup(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		c.failParse(key, s, "value is not a duration (250ms, 2s, 1h)")
	}
	return d
}

// MustURL returns the value parsed as an absolute URL, panicking otherwise
func (c Conf) MustURL(key string) *url.URL {
	s := c.mustLookup(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		c.failParse(key, s, "value is not an absolute URL")
	}
	return u
}

// MustPort validates a TCP port and returns it as a listen address (":4000")
func (c Conf) MustPort(key string) string {
	s := c.mustLookup(key)
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		c.failParse(key, s, "value is not a TCP port in 1..65535")
	}
	return ":" + s
}

// Require panics unless every listed key is set to a non-blank value
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.mustLookup(k)
	}
}

// mayParse reads key and runs parse over it. Unset falls back to def
// silently, a present but unparsable value falls back with a warning.
func mayParse[T any](c Conf, key, kind string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msgf("unparsable %s env var, falling back to default", kind)
		return def
	}
	return v
}

// MayString returns the value, or def when unset
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the parsed value; unset or malformed falls back to def
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, "int", def, strconv.Atoi)
}

// MayFloat64 returns the parsed value; unset or malformed falls back to def
func (c Conf) MayFloat64(key string, def float64) float64 {
	return mayParse(c, key, "float", def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// MayBool returns the parsed value; unset or malformed falls back to def
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, "bool", def, strconv.ParseBool)
}

// MayDuration returns the parsed value; unset or malformed falls back to def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, "duration", def, time.ParseDuration)
}

// MayCSV splits a comma-separated value into trimmed non-empty parts.
// Unset, or set with nothing but separators, falls back to def.
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it matches one of allowed (case-insensitive,
// original casing preserved), def when unset. A set value outside the allowed
// list panics rather than falling back.
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).
		Msg("env var is outside the allowed set")
	return ""
}
