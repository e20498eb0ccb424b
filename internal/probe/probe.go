// Package probe checks a running dashboard against the compiled-in finals
// table.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/wcfinals/internal/adapters/repository"
	"github.com/okian/wcfinals/internal/domain/tally"
	"github.com/okian/wcfinals/internal/domain/view"
	"github.com/okian/wcfinals/pkg/logger"
)

// outsideYear has no final; 2002 and 1998 do.
const outsideYear = 2000

// Wire shapes read back from the API.
type (
	textResponse struct {
		Text string `json:"text"`
	}

	updateResponse struct {
		Updates []struct {
			Output string          `json:"output"`
			Value  json.RawMessage `json:"value"`
		} `json:"updates"`
	}
)

// checker accumulates results from concurrent checks.
type checker struct {
	mu     sync.Mutex
	report Report
	log    logger.Logger
}

func (c *checker) expect(ctx context.Context, name string, got, want any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.report.Checks++
	if fmt.Sprint(got) == fmt.Sprint(want) {
		c.log.Debug(ctx, "check passed", logger.String("check", name))
		return
	}
	failure := fmt.Sprintf("%s: got %q, want %q", name, fmt.Sprint(got), fmt.Sprint(want))
	c.report.Failures = append(c.report.Failures, failure)
	c.log.Warn(ctx, "check failed", logger.String("check", name), logger.Any("got", got), logger.Any("want", want))
}

// Run executes every check against cfg.BaseURL. Transport failures abort
// the run and are returned; content mismatches are collected in the report
// and surface as ErrMismatch.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()
	start := time.Now()

	store := repository.NewFinalsStore()
	want := view.New(store)
	cl := newClient(cfg)
	chk := &checker{log: cfg.Logger}

	cfg.Logger.Info(ctx, "starting dashboard probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Duration("timeout", cfg.Timeout),
		logger.Int("concurrency", cfg.Concurrency))

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"health", func(ctx context.Context) error { return cl.getJSON(ctx, "/healthz", nil, nil) }},
		{"layout", func(ctx context.Context) error { return checkLayout(ctx, cl, chk, want) }},
		{"years", func(ctx context.Context) error { return checkYears(ctx, cfg, cl, chk, want) }},
		{"countries", func(ctx context.Context) error { return checkCountries(ctx, cfg, cl, chk, want, store.Winners(ctx)) }},
		{"map", func(ctx context.Context) error { return checkMap(ctx, cl, chk, store) }},
		{"update", func(ctx context.Context) error { return checkUpdate(ctx, cl, chk, want) }},
	}
	for _, s := range steps {
		if err := s.fn(ctx); err != nil {
			return nil, fmt.Errorf("%s check failed: %w", s.name, err)
		}
	}

	chk.report.Duration = time.Since(start)
	report := &chk.report
	cfg.Logger.Info(ctx, "dashboard probe finished",
		logger.Int("checks", report.Checks),
		logger.Int("failures", len(report.Failures)),
		logger.Duration("duration", report.Duration))

	if !report.OK() {
		return report, fmt.Errorf("%w: %d of %d checks failed", ErrMismatch, len(report.Failures), report.Checks)
	}
	return report, nil
}

func checkLayout(ctx context.Context, cl *client, chk *checker, want *view.Updater) error {
	var got view.Layout
	if err := cl.getJSON(ctx, "/api/layout", nil, &got); err != nil {
		return err
	}
	exp := want.Layout(ctx)
	chk.expect(ctx, "layout.countries", got.Countries, exp.Countries)
	chk.expect(ctx, "layout.subtitle", got.Subtitle, exp.Subtitle)
	chk.expect(ctx, "layout.slider", got.Slider, exp.Slider)
	chk.expect(ctx, "layout.default_country_listed", slices.Contains(got.Countries, got.DefaultCountry), true)
	return nil
}

// checkYears walks the slider from its first to last year, including the
// steps with no final.
func checkYears(ctx context.Context, cfg Config, cl *client, chk *checker, want *view.Updater) error {
	slider := want.Layout(ctx).Slider
	years := []int{outsideYear}
	for y := slider.Min; y <= slider.Max; y += slider.Step {
		years = append(years, y)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for _, y := range years {
		g.Go(func() error {
			var got textResponse
			q := url.Values{"year": {strconv.Itoa(y)}}
			if err := cl.getJSON(gctx, "/api/year", q, &got); err != nil {
				return err
			}
			exp, _ := want.RenderYearInfo(gctx, y)
			chk.expect(gctx, fmt.Sprintf("year[%d]", y), got.Text, exp)
			return nil
		})
	}
	return g.Wait()
}

func checkCountries(ctx context.Context, cfg Config, cl *client, chk *checker, want *view.Updater, countries []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for _, c := range countries {
		g.Go(func() error {
			var got textResponse
			if err := cl.getJSON(gctx, "/api/country", url.Values{"name": {c}}, &got); err != nil {
				return err
			}
			chk.expect(gctx, "country["+c+"]", got.Text, want.RenderCountryInfo(gctx, c))
			return nil
		})
	}
	return g.Wait()
}

// checkMap requests the last year so cumulative and all-time maps agree.
func checkMap(ctx context.Context, cl *client, chk *checker, store repository.Store) error {
	years := store.Years(ctx)
	if len(years) == 0 {
		return nil
	}
	last := years[len(years)-1]

	var got view.MapFigure
	if err := cl.getJSON(ctx, "/api/map", url.Values{"year": {strconv.Itoa(last)}}, &got); err != nil {
		return err
	}

	counts := tally.WinCounts(store.Records(ctx))
	for _, c := range counts {
		wins, _ := got.ValueOf(c.Country)
		chk.expect(ctx, "map["+c.Country+"]", wins, c.Wins)
	}
	sum := 0
	for _, v := range got.Values {
		sum += v
	}
	chk.expect(ctx, "map.total", sum, tally.Total(counts))
	chk.expect(ctx, "map.locations", len(got.Locations), len(counts))
	return nil
}

// checkUpdate publishes a slider change and checks the year output.
func checkUpdate(ctx context.Context, cl *client, chk *checker, want *view.Updater) error {
	year := want.Layout(ctx).Slider.Min
	var got updateResponse
	body := map[string]any{"input": "year-slider", "value": year}
	if err := cl.postJSON(ctx, "/api/update", body, &got); err != nil {
		return err
	}

	outputs := make([]string, 0, len(got.Updates))
	for _, u := range got.Updates {
		outputs = append(outputs, u.Output)
		if u.Output != "year-info" {
			continue
		}
		var text string
		if err := json.Unmarshal(u.Value, &text); err != nil {
			return fmt.Errorf("decode year-info: %w", err)
		}
		exp, _ := want.RenderYearInfo(ctx, year)
		chk.expect(ctx, "update.year-info", text, exp)
	}
	chk.expect(ctx, "update.outputs", outputs, []string{"world-map", "year-info"})
	return nil
}
