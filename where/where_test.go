package where

import (
	"path/filepath"
	"testing"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestDirectories(t *testing.T) {
	Convey("Given the application directories", t, func() {
		for name, dir := range map[string]func() string{
			"Config": Config,
			"Cache":  Cache,
			"Logs":   Logs,
			"Temp":   Temp,
		} {
			Convey(name+" should exist once resolved", func() {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})
}

func TestConfigOverride(t *testing.T) {
	Convey("Given GPLAY_CONFIG_PATH", t, func() {
		t.Setenv(EnvConfigPath, "/custom/gplay")

		Convey("Config should use it", func() {
			So(Config(), ShouldEqual, "/custom/gplay")
		})

		Convey("History should follow the config directory", func() {
			So(History(), ShouldEqual, filepath.Join("/custom/gplay", "history.json"))
		})
	})
}

func TestFiles(t *testing.T) {
	Convey("Given the cache files", t, func() {
		Convey("They should live in the cache directory", func() {
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
			So(filepath.Dir(Listings()), ShouldEqual, Cache())
			So(Queries(), ShouldNotEqual, Listings())
		})
	})
}
