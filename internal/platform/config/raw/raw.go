// Package raw is the bootstrap env reader. The logger configures itself
// through this package, so nothing here may log or import the logger.
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed window onto the environment, mirroring config.Conf
// without the logging
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix appends p and returns the narrowed view
func (c Conf) Prefix(p string) Conf {
	c.prefix += p
	return c
}

// env reads the trimmed value for key under the current prefix
func (c Conf) env(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// Get returns the trimmed value, or def when unset
func (c Conf) Get(key, def string) string {
	if v := c.env(key); v != "" {
		return v
	}
	return def
}

// GetBool treats 1/true/yes (any casing) as true and everything else set
// as false; unset returns def
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.env(key)) {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt accepts unsigned digit strings only; anything else, including
// signed values, falls back to def
func (c Conf) GetInt(key string, def int) int {
	s := c.env(key)
	if s == "" {
		return def
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
