package store

import (
	"vibecheck/internal/platform/logger"
)

// Option adjusts the Store before any backend is opened
type Option func(*Store)

// WithLogger routes subclient logging through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}
