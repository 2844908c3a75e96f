package filesystem

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Reset(SetOsFs)

		Convey("It should default to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It should switch to memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Set should install the given backend", func() {
			fs := afero.NewMemMapFs()
			Set(fs)
			So(afero.WriteFile(fs, "/a", []byte("x"), 0o644), ShouldBeNil)

			exists, err := API().Exists("/a")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given a gache adapter over memory", t, func() {
		SetMemMapFs()
		Reset(SetOsFs)

		var fs GacheFs

		Convey("Files written through it should be visible to API", func() {
			So(fs.MkdirAll("/cache", os.ModePerm), ShouldBeNil)

			file, err := fs.OpenFile("/cache/entry.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = file.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(file.Close(), ShouldBeNil)

			data, err := API().ReadFile("/cache/entry.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})
	})
}
