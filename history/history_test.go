package history

import (
	"testing"
	"time"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a download record", t, func() {
		So(Clear(), ShouldBeNil)

		variant := source.StreamVariant{Kind: source.KindPrimary, Label: "1080p", URL: "https://cdn.example/1080.m3u8"}
		record := NewRecord("12345", "Jornal", variant, "/videos/Jornal.mp4")

		Convey("It should describe the variant", func() {
			So(record.Kind, ShouldEqual, "primary")
			So(record.String(), ShouldEqual, "Jornal [1080p] : /videos/Jornal.mp4")
		})

		Convey("When saving the record", func() {
			err := Save(record)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the record should be saved", func() {
					records, err := Get()
					So(err, ShouldBeNil)
					So(records["12345 (/videos/Jornal.mp4)"].Label, ShouldEqual, "1080p")
				})

				Convey("And saving it again should replace it", func() {
					again := NewRecord("12345", "Jornal", variant, "/videos/Jornal.mp4")
					So(Save(again), ShouldBeNil)

					records, err := List()
					So(err, ShouldBeNil)
					So(records, ShouldHaveLength, 1)
				})

				Convey("And removing it should forget it", func() {
					So(Remove(record), ShouldBeNil)

					records, err := Get()
					So(err, ShouldBeNil)
					So(records, ShouldBeEmpty)
				})
			})
		})

		Convey("List should order records by recency", func() {
			older := NewRecord("1", "Old", variant, "/videos/old.mp4")
			older.SavedAt = time.Now().Add(-time.Hour)
			So(Save(older), ShouldBeNil)
			So(Save(record), ShouldBeNil)

			records, err := List()
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 2)
			So(records[0].VideoID, ShouldEqual, "12345")
			So(records[1].VideoID, ShouldEqual, "1")
		})
	})
}
