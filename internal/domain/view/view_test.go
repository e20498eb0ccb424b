package view_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/okian/wcfinals/internal/adapters/repository"
	"github.com/okian/wcfinals/internal/domain/view"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUpdater_RenderYearInfo(t *testing.T) {
	Convey("Given an updater over the finals table", t, func() {
		ctx := context.Background()
		store := repository.NewFinalsStore()
		u := view.New(store)

		Convey("When rendering 1930", func() {
			text, ok := u.RenderYearInfo(ctx, 1930)

			Convey("Then it should describe Uruguay's win", func() {
				So(ok, ShouldBeTrue)
				So(text, ShouldEqual, "In the year 1930, Uruguay won the final against Argentina with a score of 4-2.")
			})
		})

		Convey("When rendering a final decided on penalties", func() {
			text, ok := u.RenderYearInfo(ctx, 1994)

			Convey("Then the score annotation should be kept verbatim", func() {
				So(ok, ShouldBeTrue)
				So(text, ShouldEqual, "In the year 1994, Brazil won the final against Italy with a score of 0-0 (3-2 pen).")
			})
		})

		Convey("When rendering every year in the table", func() {
			Convey("Then each sentence should carry that year's record", func() {
				for m := range store.Records(ctx) {
					text, ok := u.RenderYearInfo(ctx, m.Year)
					So(ok, ShouldBeTrue)
					So(text, ShouldEqual, fmt.Sprintf("In the year %d, %s won the final against %s with a score of %s.",
						m.Year, m.Winner, m.RunnerUp, m.Score))
				}
			})
		})

		Convey("When rendering a year without a final", func() {
			Convey("Then it should fall back to the no-data text", func() {
				for _, year := range []int{2000, 1942, 1946, 0, -4, 2026} {
					text, ok := u.RenderYearInfo(ctx, year)
					So(ok, ShouldBeFalse)
					So(text, ShouldEqual, "No data available.")
				}
			})
		})
	})
}

func TestUpdater_RenderCountryInfo(t *testing.T) {
	Convey("Given an updater over the finals table", t, func() {
		ctx := context.Background()
		store := repository.NewFinalsStore()
		u := view.New(store)

		Convey("When rendering Brazil", func() {
			Convey("Then it should report five titles", func() {
				So(u.RenderCountryInfo(ctx, "Brazil"), ShouldEqual, "Brazil has won the FIFA World Cup 5 times.")
			})
		})

		Convey("When rendering England", func() {
			Convey("Then the count should not be pluralised differently", func() {
				So(u.RenderCountryInfo(ctx, "England"), ShouldEqual, "England has won the FIFA World Cup 1 times.")
			})
		})

		Convey("When rendering a country that never won", func() {
			Convey("Then it should report zero rather than fail", func() {
				So(u.RenderCountryInfo(ctx, "Netherlands"), ShouldEqual, "Netherlands has won the FIFA World Cup 0 times.")
			})
		})

		Convey("When rendering every winner", func() {
			Convey("Then the counts should sum to the number of finals", func() {
				total := 0
				for _, c := range store.Winners(ctx) {
					text := u.RenderCountryInfo(ctx, c)
					var n int
					_, err := fmt.Sscanf(strings.TrimPrefix(text, c+" has won the FIFA World Cup "), "%d times.", &n)
					So(err, ShouldBeNil)
					So(text, ShouldEndWith, fmt.Sprintf("%d times.", n))
					total += n
				}
				So(total, ShouldEqual, 22)
			})
		})
	})
}

func TestUpdater_RenderMap(t *testing.T) {
	Convey("Given an updater with default settings", t, func() {
		ctx := context.Background()
		store := repository.NewFinalsStore()
		u := view.New(store)

		Convey("When rendering the map for 1930 and 2022", func() {
			first := u.RenderMap(ctx, 1930)
			last := u.RenderMap(ctx, 2022)

			Convey("Then the shading should be identical", func() {
				So(first.Locations, ShouldResemble, last.Locations)
				So(first.Values, ShouldResemble, last.Values)
			})

			Convey("And only the titles should differ", func() {
				So(first.Title, ShouldEqual, "World Cup Winners (Up to 1930)")
				So(last.Title, ShouldEqual, "World Cup Winners (Up to 2022)")
			})

			Convey("And the figure should be keyed by country name", func() {
				So(first.LocationMode, ShouldEqual, "country names")
				So(first.ColorBarTitle, ShouldEqual, "# of Wins")
				So(first.HoverNames, ShouldResemble, first.Locations)
				So(first.Locations, ShouldResemble, store.Winners(ctx))
			})

			Convey("And each value should be that country's title count", func() {
				v, ok := first.ValueOf("Brazil")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 5)
				v, ok = first.ValueOf("Uruguay")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 2)
				_, ok = first.ValueOf("Croatia")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When rendering for a year outside the table", func() {
			fig := u.RenderMap(ctx, 1800)

			Convey("Then it should still render all-time counts", func() {
				So(len(fig.Locations), ShouldEqual, 9)
				So(fig.Title, ShouldEqual, "World Cup Winners (Up to 1800)")
			})
		})
	})

	Convey("Given an updater with the cumulative map enabled", t, func() {
		ctx := context.Background()
		u := view.New(repository.NewFinalsStore(), view.WithCumulativeMap(true))

		Convey("When rendering the map for 1930", func() {
			fig := u.RenderMap(ctx, 1930)

			Convey("Then only Uruguay should be shaded", func() {
				So(u.Cumulative(), ShouldBeTrue)
				So(fig.Locations, ShouldResemble, []string{"Uruguay"})
				So(fig.Values, ShouldResemble, []int{1})
			})
		})

		Convey("When rendering the map for 2022", func() {
			fig := u.RenderMap(ctx, 2022)

			Convey("Then it should match the all-time map", func() {
				So(fig.Values, ShouldResemble, view.New(repository.NewFinalsStore()).RenderMap(ctx, 2022).Values)
			})
		})
	})
}

func TestUpdater_Layout(t *testing.T) {
	Convey("Given an updater with default settings", t, func() {
		ctx := context.Background()
		u := view.New(repository.NewFinalsStore())

		Convey("When building the layout", func() {
			l := u.Layout(ctx)

			Convey("Then it should describe the inputs", func() {
				So(l.Title, ShouldEqual, "FIFA World Cup Finals Dashboard")
				So(l.Subtitle, ShouldEqual, "View the history of FIFA World Cup winners and runner-ups from 1930 to 2022.")
				So(l.DefaultCountry, ShouldEqual, "Brazil")
				So(l.Countries, ShouldContain, "England")
				So(len(l.Countries), ShouldEqual, 9)
				So(l.Slider.Min, ShouldEqual, 1930)
				So(l.Slider.Max, ShouldEqual, 2022)
				So(l.Slider.Step, ShouldEqual, 4)
				So(l.Slider.Value, ShouldEqual, 1930)
				So(len(l.Slider.Marks), ShouldEqual, 22)
			})
		})
	})

	Convey("Given an updater with custom options", t, func() {
		u := view.New(repository.NewFinalsStore(),
			view.WithTitle("Finals"),
			view.WithDefaultCountry("Italy"),
			view.WithDefaultCountry(""),
		)

		Convey("Then the layout should use them and ignore empty values", func() {
			l := u.Layout(context.Background())
			So(l.Title, ShouldEqual, "Finals")
			So(l.DefaultCountry, ShouldEqual, "Italy")
		})
	})
}
