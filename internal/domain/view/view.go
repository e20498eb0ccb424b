// Package view renders the dashboard's outputs from the finals table.
//
// Every render is a pure function of the table and the current UI
// selection; nothing here mutates shared state.
package view

import (
	"context"
	"fmt"

	"github.com/okian/wcfinals/internal/adapters/repository"
	"github.com/okian/wcfinals/internal/domain/tally"
)

// Page defaults.
const (
	DefaultTitle   = "FIFA World Cup Finals Dashboard"
	DefaultCountry = "Brazil"
	NoData         = "No data available."

	locationMode  = "country names"
	colorBarTitle = "# of Wins"
	sliderStep    = 4
)

// MapFigure is a choropleth keyed by country name and shaded by title count.
type MapFigure struct {
	Title         string   `json:"title"`
	LocationMode  string   `json:"location_mode"`
	Locations     []string `json:"locations"`
	Values        []int    `json:"values"`
	HoverNames    []string `json:"hover_names"`
	ColorBarTitle string   `json:"color_bar_title"`
}

// ValueOf returns the shading value for country.
func (f MapFigure) ValueOf(country string) (int, bool) {
	for i, loc := range f.Locations {
		if loc == country {
			return f.Values[i], true
		}
	}
	return 0, false
}

// Slider describes the year slider.
type Slider struct {
	Min   int   `json:"min"`
	Max   int   `json:"max"`
	Step  int   `json:"step"`
	Value int   `json:"value"`
	Marks []int `json:"marks"`
}

// Layout is the static part of the page: headings and input choices.
type Layout struct {
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle"`
	Countries      []string `json:"countries"`
	DefaultCountry string   `json:"default_country"`
	Slider         Slider   `json:"slider"`
}

// Updater derives the dashboard outputs from a Store.
type Updater struct {
	store          repository.Store
	cumulative     bool
	defaultCountry string
	title          string
}

// New creates an Updater over store.
func New(store repository.Store, opts ...Option) *Updater {
	u := &Updater{
		store:          store,
		defaultCountry: DefaultCountry,
		title:          DefaultTitle,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Cumulative reports whether RenderMap filters by the selected year.
func (u *Updater) Cumulative() bool { return u.cumulative }

// Layout returns the page headings and input choices.
func (u *Updater) Layout(ctx context.Context) Layout {
	years := u.store.Years(ctx)
	l := Layout{
		Title:          u.title,
		Countries:      u.store.Winners(ctx),
		DefaultCountry: u.defaultCountry,
		Slider:         Slider{Step: sliderStep, Marks: years},
	}
	if len(years) > 0 {
		l.Slider.Min = years[0]
		l.Slider.Max = years[len(years)-1]
		l.Slider.Value = years[0]
		l.Subtitle = fmt.Sprintf("View the history of FIFA World Cup winners and runner-ups from %d to %d.", l.Slider.Min, l.Slider.Max)
	}
	return l
}

// RenderMap builds the winners choropleth titled for selectedYear.
func (u *Updater) RenderMap(ctx context.Context, selectedYear int) MapFigure {
	var opts []tally.Option
	if u.cumulative {
		opts = append(opts, tally.UpTo(selectedYear))
	}
	counts := tally.WinCounts(u.store.Records(ctx), opts...)

	fig := MapFigure{
		Title:         fmt.Sprintf("World Cup Winners (Up to %d)", selectedYear),
		LocationMode:  locationMode,
		Locations:     make([]string, 0, len(counts)),
		Values:        make([]int, 0, len(counts)),
		HoverNames:    make([]string, 0, len(counts)),
		ColorBarTitle: colorBarTitle,
	}
	for _, c := range counts {
		fig.Locations = append(fig.Locations, c.Country)
		fig.Values = append(fig.Values, c.Wins)
		fig.HoverNames = append(fig.HoverNames, c.Country)
	}
	return fig
}

// RenderCountryInfo describes how many titles selectedCountry holds.
func (u *Updater) RenderCountryInfo(ctx context.Context, selectedCountry string) string {
	wins := tally.WinCount(u.store.Records(ctx), selectedCountry)
	return fmt.Sprintf("%s has won the FIFA World Cup %d times.", selectedCountry, wins)
}

// RenderYearInfo describes the final played in selectedYear. The second
// return value is false when no final was played that year, in which case
// the text is NoData.
func (u *Updater) RenderYearInfo(ctx context.Context, selectedYear int) (string, bool) {
	m, err := u.store.ByYear(ctx, selectedYear)
	if err != nil {
		return NoData, false
	}
	return fmt.Sprintf("In the year %d, %s won the final against %s with a score of %s.",
		m.Year, m.Winner, m.RunnerUp, m.Score), true
}
