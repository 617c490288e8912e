package store

import (
	"taller/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithGuard makes Open ping every opened backend before returning
func WithGuard() Option {
	return func(s *Store) error {
		s.guard = true
		return nil
	}
}
