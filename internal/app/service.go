// Package service provides the dashboard service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/wcfinals/internal/adapters/repository"
	"github.com/okian/wcfinals/internal/domain/callback"
	"github.com/okian/wcfinals/internal/domain/view"
	"github.com/okian/wcfinals/pkg/logger"
	"github.com/okian/wcfinals/pkg/metrics"
)

// UI input ids.
const (
	InputYearSlider      = "year-slider"
	InputCountryDropdown = "country-dropdown"
)

// UI output ids.
const (
	OutputWorldMap    = "world-map"
	OutputYearInfo    = "year-info"
	OutputCountryInfo = "country-info"
)

// View names used in metrics and stats.
const (
	viewMap     = "map"
	viewCountry = "country_info"
	viewYear    = "year_info"
)

const nanosecondsPerMillisecond = 1e6

// Service renders the dashboard views and dispatches UI events.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	updater  *view.Updater
	registry *callback.Registry

	// Configuration
	defaultCountry string
	title          string
	cumulative     bool

	// State
	started bool

	// Counters
	mapRenders     atomic.Int64
	countryRenders atomic.Int64
	yearRenders    atomic.Int64
	lookupMisses   atomic.Int64
	dispatches     atomic.Int64

	logger logger.Logger
}

// New constructs a Service over the compiled-in finals table unless
// WithStore says otherwise.
func New(opts ...Option) *Service {
	s := &Service{
		store:          repository.NewFinalsStore(),
		defaultCountry: view.DefaultCountry,
		title:          view.DefaultTitle,
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.updater = view.New(s.store,
		view.WithDefaultCountry(s.defaultCountry),
		view.WithTitle(s.title),
		view.WithCumulativeMap(s.cumulative),
	)
	return s
}

// Start binds the UI callbacks and publishes dataset gauges.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	s.logger.Info(ctx, "starting dashboard service...")

	registry := callback.NewRegistry()
	bindings := []struct {
		input, output string
		handler       callback.Handler
	}{
		{InputYearSlider, OutputWorldMap, s.handleMap},
		{InputYearSlider, OutputYearInfo, s.handleYearInfo},
		{InputCountryDropdown, OutputCountryInfo, s.handleCountryInfo},
	}
	for _, b := range bindings {
		if err := registry.Bind(b.input, b.output, b.handler); err != nil {
			return err
		}
	}
	s.registry = registry

	records, winners := s.store.Count(ctx), len(s.store.Winners(ctx))
	metrics.UpdateDataset(records, winners)

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("finals", records),
		logger.Int("winners", winners),
		logger.Bool("cumulativeMap", s.cumulative),
		logger.String("defaultCountry", s.defaultCountry),
	)
	return nil
}

// Stop releases the callback bindings. Calling Stop on a stopped service
// is a no-op.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.registry = nil
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Layout returns the page headings and input choices.
func (s *Service) Layout(ctx context.Context) view.Layout {
	return s.updater.Layout(ctx)
}

// RenderMap builds the winners map for selectedYear.
func (s *Service) RenderMap(ctx context.Context, selectedYear int) view.MapFigure {
	start := time.Now()
	fig := s.updater.RenderMap(ctx, selectedYear)
	s.mapRenders.Add(1)
	metrics.RecordRender(viewMap, sinceMs(start))
	return fig
}

// RenderCountryInfo describes selectedCountry's title count.
func (s *Service) RenderCountryInfo(ctx context.Context, selectedCountry string) string {
	start := time.Now()
	text := s.updater.RenderCountryInfo(ctx, selectedCountry)
	s.countryRenders.Add(1)
	metrics.RecordRender(viewCountry, sinceMs(start))
	return text
}

// RenderYearInfo describes the final played in selectedYear, or returns
// view.NoData when there was none.
func (s *Service) RenderYearInfo(ctx context.Context, selectedYear int) string {
	start := time.Now()
	text, ok := s.updater.RenderYearInfo(ctx, selectedYear)
	s.yearRenders.Add(1)
	metrics.RecordRender(viewYear, sinceMs(start))
	if !ok {
		s.lookupMisses.Add(1)
		metrics.RecordLookupMiss()
		s.logger.Debug(ctx, "no final for year", logger.Int("year", selectedYear))
	}
	return text
}

// Dispatch publishes a UI input change and returns the refreshed outputs.
func (s *Service) Dispatch(ctx context.Context, input string, v callback.Value) ([]callback.Update, error) {
	s.mu.RLock()
	registry := s.registry
	s.mu.RUnlock()
	if registry == nil {
		return nil, ErrNotStarted
	}

	s.dispatches.Add(1)
	metrics.RecordDispatch(input)
	updates, err := registry.Dispatch(ctx, input, v)
	if err != nil {
		metrics.RecordDispatchError(input)
		s.logger.Warn(ctx, "dispatch failed",
			logger.String("input", input),
			logger.String("value", v.String()),
			logger.Error(err),
		)
		return nil, err
	}
	return updates, nil
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	s.mu.RLock()
	started := s.started
	var inputs []string
	if s.registry != nil {
		inputs = s.registry.Inputs()
	}
	s.mu.RUnlock()

	return map[string]interface{}{
		"started":        started,
		"finals":         s.store.Count(ctx),
		"winners":        len(s.store.Winners(ctx)),
		"cumulativeMap":  s.cumulative,
		"defaultCountry": s.defaultCountry,
		"inputs":         inputs,
		"mapRenders":     s.mapRenders.Load(),
		"countryRenders": s.countryRenders.Load(),
		"yearRenders":    s.yearRenders.Load(),
		"lookupMisses":   s.lookupMisses.Load(),
		"dispatches":     s.dispatches.Load(),
	}
}

func (s *Service) handleMap(ctx context.Context, v callback.Value) (any, error) {
	year, err := v.Int()
	if err != nil {
		return nil, err
	}
	return s.RenderMap(ctx, year), nil
}

func (s *Service) handleYearInfo(ctx context.Context, v callback.Value) (any, error) {
	year, err := v.Int()
	if err != nil {
		return nil, err
	}
	return s.RenderYearInfo(ctx, year), nil
}

func (s *Service) handleCountryInfo(ctx context.Context, v callback.Value) (any, error) {
	return s.RenderCountryInfo(ctx, v.String()), nil
}

func sinceMs(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond
}
