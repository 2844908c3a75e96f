package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFg(t *testing.T) {
	Convey("Given a foreground renderer", t, func() {
		render := Fg(lipgloss.Color("1"))

		Convey("The rendered string should keep its text", func() {
			So(render("gplay"), ShouldContainSubstring, "gplay")
		})
	})
}
