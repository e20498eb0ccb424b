package service

import (
	"github.com/okian/wcfinals/internal/adapters/repository"
	"github.com/okian/wcfinals/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the compiled-in finals table.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDefaultCountry sets the dropdown's initial selection.
func WithDefaultCountry(country string) Option {
	return func(s *Service) {
		if country != "" {
			s.defaultCountry = country
		}
	}
}

// WithTitle sets the page heading.
func WithTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.title = title
		}
	}
}

// WithCumulativeMap makes the winners map count only finals up to the
// selected year.
func WithCumulativeMap(enabled bool) Option {
	return func(s *Service) {
		s.cumulative = enabled
	}
}
