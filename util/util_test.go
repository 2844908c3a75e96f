package util

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("Jornal  Nacional - 12/05"), ShouldEqual, "Jornal_Nacional_-_12_05")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(0, "video", "videos"), ShouldEqual, "0 videos")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history file"), ShouldEqual, "History file")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("última edição"), ShouldEqual, "Última edição")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`r(?P<width>\d+)_(?P<height>\d+)`)
		groups := ReGroups(re, "/hls/r360_1080/index.m3u8")
		So(groups, ShouldHaveLength, 1)
		So(groups[0]["width"], ShouldEqual, "360")
		So(groups[0]["height"], ShouldEqual, "1080")

		Convey("Every match is returned in order", func() {
			groups := ReGroups(re, "r1_2/r3_4")
			So(groups, ShouldHaveLength, 2)
			So(groups[1]["height"], ShouldEqual, "4")
		})

		So(ReGroups(re, "no marker"), ShouldBeEmpty)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/tmp/gplay/nested", 0o755))
		lo.Must0(fs.WriteFile("/tmp/gplay/nested/a.mp4", []byte("x"), 0o644))

		Convey("Delete removes a directory tree", func() {
			So(Delete("/tmp/gplay"), ShouldBeNil)
			So(lo.Must(fs.Exists("/tmp/gplay/nested/a.mp4")), ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/does/not/exist"), ShouldNotBeNil)
		})
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("Given an erasable message", t, func() {
		var buf bytes.Buffer
		erase := PrintErasable(&buf, "loading")

		So(buf.String(), ShouldEqual, "\rloading")

		Convey("Erasing should blank it with the same width", func() {
			buf.Reset()
			erase()
			So(buf.String(), ShouldEqual, "\r       \r")
		})
	})
}
