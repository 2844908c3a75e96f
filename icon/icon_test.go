package icon

import (
	"testing"

	"github.com/gplay-cli/gplay/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given the download icon", t, func() {
		Reset(func() { viper.Set(key.IconsVariant, "plain") })

		for _, variant := range AvailableVariants() {
			Convey("It should render for variant "+variant, func() {
				viper.Set(key.IconsVariant, variant)
				So(Get(Download), ShouldNotBeEmpty)
			})
		}

		Convey("Plain should be ASCII friendly", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldEqual, "✔")
			So(Get(Fail), ShouldEqual, "✖")
		})

		Convey("An unknown variant should render nothing", func() {
			viper.Set(key.IconsVariant, "wingdings")
			So(Get(Download), ShouldBeEmpty)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Every registered icon should have every variant", t, func() {
		So(len(glyphs{}), ShouldEqual, len(variants))
		for i, g := range icons {
			So(i, ShouldBeGreaterThan, 0)
			for _, glyph := range g {
				So(glyph, ShouldNotBeEmpty)
			}
		}
	})
}
