package query

import (
	"testing"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered titles", t, func() {
		So(Remember("12082", "Jornal Nacional", 1), ShouldBeNil)
		So(Remember("2305", "Bom Dia Brasil", 10), ShouldBeNil)

		Convey("Suggestions match ids", func() {
			s := SuggestMany("120")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
			So(s[0].ID, ShouldEqual, "12082")
		})

		Convey("Suggestions match names case-insensitively", func() {
			s := SuggestMany("bom")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
			So(s[0].ID, ShouldEqual, "2305")
		})

		Convey("An empty query lists everything by rank", func() {
			s := SuggestMany("")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0].Rank, ShouldBeGreaterThanOrEqualTo, s[1].Rank)
		})

		Convey("Completions carry the name as description", func() {
			So(Completions("2305"), ShouldContain, "2305\tBom Dia Brasil")
		})

		Convey("Empty ids are ignored", func() {
			So(Remember("  ", "nothing", 1), ShouldBeNil)
		})

		Convey("Suggest returns the top hit", func() {
			So(Suggest("2305").MustGet().Name, ShouldEqual, "Bom Dia Brasil")
			So(Suggest("zzzz").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Disabled suggestions return nothing", t, func() {
		viper.Set(key.SearchShowSuggestions, false)
		defer viper.Set(key.SearchShowSuggestions, true)

		So(SuggestMany(""), ShouldBeEmpty)
	})
}
