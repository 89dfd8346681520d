package app

import (
	"github.com/okian/regista/internal/domain/analysis"
	"github.com/okian/regista/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithDataPath points the service at a preloaded CSV export.
func WithDataPath(path string) Option {
	return func(s *Service) {
		s.dataPath = path
	}
}

// WithWatchData enables the file monitor on the preloaded dataset.
func WithWatchData(watch bool) Option {
	return func(s *Service) {
		s.watchData = watch
	}
}

// WithDefaultParams sets the default filter parameters served to clients.
func WithDefaultParams(p analysis.Params) Option {
	return func(s *Service) {
		if p.MaxAge > 0 {
			s.defaultParams.MaxAge = p.MaxAge
		}
		if p.MinNineties >= 0 {
			s.defaultParams.MinNineties = p.MinNineties
		}
		if p.Position != "" {
			s.defaultParams.Position = p.Position
		}
	}
}

// WithMaxResultLimit caps the leaderboard limit parameter.
func WithMaxResultLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxResultLimit = limit
		}
	}
}
