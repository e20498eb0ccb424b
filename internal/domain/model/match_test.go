package model_test

import (
	"testing"

	"github.com/okian/wcfinals/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatchRecord_String(t *testing.T) {
	Convey("Given a match record with a penalty score", t, func() {
		m := model.MatchRecord{Year: 1994, Winner: "Brazil", RunnerUp: "Italy", Score: "0-0 (3-2 pen)"}

		Convey("Then String should list year, winner, score and runner-up", func() {
			So(m.String(), ShouldEqual, "1994 Brazil 0-0 (3-2 pen) Italy")
		})
	})
}
