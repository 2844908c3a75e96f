package log

import (
	"testing"
	"time"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		viper.Set(key.LogsStderr, false)

		Convey("Setup should leave every level off", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(logrus.ErrorLevel), ShouldBeFalse)
			So(func() { Infof("ignored %d", 1) }, ShouldNotPanic)
			So(func() { WithFields(map[string]any{"a": 1}).Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given file logging at debug level", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsLevel, "info")
			lo.Must0(Setup())
		})

		So(Setup(), ShouldBeNil)

		Convey("Debug entries should be enabled", func() {
			So(Enabled(logrus.DebugLevel), ShouldBeTrue)
			So(Enabled(logrus.TraceLevel), ShouldBeFalse)
		})

		Convey("Entries should land in the dated file", func() {
			Info("hello from the test")

			path := where.Logs() + "/" + time.Now().Format("2006-01-02") + ".log"
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "hello from the test")
		})
	})

	Convey("Given an unknown level", t, func() {
		viper.Set(key.LogsStderr, true)
		viper.Set(key.LogsLevel, "loud")
		Reset(func() {
			viper.Set(key.LogsStderr, false)
			viper.Set(key.LogsLevel, "info")
			lo.Must0(Setup())
		})

		Convey("Setup should fall back to info", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(logrus.InfoLevel), ShouldBeTrue)
			So(Enabled(logrus.DebugLevel), ShouldBeFalse)
		})
	})
}
