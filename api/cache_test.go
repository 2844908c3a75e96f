package api

import (
	"testing"
	"time"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestListingCache(t *testing.T) {
	Convey("Given a listing cache on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		clock := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
		cache := NewListingCache("/cache/listings.json", 10*time.Minute)
		cache.now = func() time.Time { return clock }

		q := DateQuery{TitleID: "t", From: clock, To: clock}
		response := &source.DatedVideosResponse{Items: []source.DatedVideoItem{{ID: "1"}}}

		Convey("A miss returns nothing", func() {
			So(cache.Get(q).IsAbsent(), ShouldBeTrue)
		})

		Convey("A stored response is returned while fresh", func() {
			So(cache.Set(q, response), ShouldBeNil)

			cached, ok := cache.Get(q).Get()
			So(ok, ShouldBeTrue)
			So(cached.Items[0].ID, ShouldEqual, "1")

			Convey("And expires after the ttl", func() {
				clock = clock.Add(11 * time.Minute)
				So(cache.Get(q).IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Other pages are distinct entries", func() {
			So(cache.Set(q, response), ShouldBeNil)
			q.Page = 2
			So(cache.Get(q).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("A disabled or nil cache never stores", t, func() {
		filesystem.SetMemMapFs()

		disabled := NewListingCache("/cache/disabled.json", 0)
		q := DateQuery{TitleID: "t"}
		So(disabled.Set(q, &source.DatedVideosResponse{}), ShouldBeNil)
		So(disabled.Get(q).IsAbsent(), ShouldBeTrue)

		var none *ListingCache
		So(none.Set(q, &source.DatedVideosResponse{}), ShouldBeNil)
		So(none.Get(q).IsAbsent(), ShouldBeTrue)
	})
}
