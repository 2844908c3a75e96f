package open

import (
	"testing"

	"github.com/gplay-cli/gplay/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a downloaded file", t, func() {
		const path = "/tmp/video.mp4"

		Convey("Linux should use xdg-open", func() {
			cmd, ok := command(constant.Linux, path)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", path})
		})

		Convey("macOS should use open", func() {
			cmd, ok := command(constant.Darwin, path)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", path})
		})

		Convey("Windows should go through rundll32", func() {
			cmd, ok := command(constant.Windows, path)
			So(ok, ShouldBeTrue)
			So(cmd.Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", path})
		})

		Convey("An unknown OS should be rejected", func() {
			_, ok := command("plan9", path)
			So(ok, ShouldBeFalse)
		})
	})
}
