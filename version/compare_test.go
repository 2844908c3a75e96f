package version

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders by major, minor then patch", func() {
			So(lo.Must(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
			So(lo.Must(Compare("0.3.0", "0.3.1")), ShouldEqual, -1)
			So(lo.Must(Compare("v0.3.0", "0.3.0")), ShouldEqual, 0)
			So(lo.Must(Compare("0.4.0-rc1", "0.3.9")), ShouldEqual, 1)
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("latest", "0.3.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.2", "0.3.0")
			So(err, ShouldNotBeNil)
		})
	})
}
