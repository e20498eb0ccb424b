package api

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOpErrors(t *testing.T) {
	Convey("Given operation errors", t, func() {
		cause := errors.New("boom")

		Convey("When wrapping with a kind", func() {
			err := WrapKind("api.get_year", ErrBadRequest, cause)

			Convey("Then both the kind and the cause should match", func() {
				So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api.get_year: bad request: boom")
			})
		})

		Convey("When creating a bare kind", func() {
			err := NewKind("api.post_update", ErrNotFound)

			Convey("Then it should carry the op", func() {
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api.post_update: not found")
			})
		})

		Convey("When wrapping a plain error", func() {
			So(Wrap("op", nil), ShouldBeNil)
			err := Wrap("op", cause)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "op: boom")
		})
	})
}

func TestGetErrorType(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(500), ShouldEqual, "server_error")
		So(getErrorType(503), ShouldEqual, "server_error")
		So(getErrorType(404), ShouldEqual, "not_found")
		So(getErrorType(400), ShouldEqual, "client_error")
		So(getErrorType(200), ShouldEqual, "unknown")
	})
}

func TestValidRequestID(t *testing.T) {
	Convey("Given candidate request ids", t, func() {
		So(validRequestID("abc-123"), ShouldBeTrue)
		So(validRequestID(""), ShouldBeFalse)
		So(validRequestID("has space"), ShouldBeFalse)
		So(validRequestID(string(make([]byte, 200))), ShouldBeFalse)
		So(validRequestID("ünïcode"), ShouldBeFalse)
	})
}
