package source

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestKindOf(t *testing.T) {
	Convey("KindOf", t, func() {
		So(KindOf("primary", ""), ShouldEqual, KindPrimary)
		So(KindOf("", "primary"), ShouldEqual, KindPrimary)
		So(KindOf("fallback", ""), ShouldEqual, KindFallback)
		So(KindOf("fallback", "primary"), ShouldEqual, KindPrimary)
		So(KindOf("Primary"), ShouldEqual, KindUnknown)
		So(KindOf(), ShouldEqual, KindUnknown)
	})
}

func TestKindText(t *testing.T) {
	Convey("Kind text encoding", t, func() {
		for _, k := range []Kind{KindPrimary, KindFallback, KindUnknown} {
			var decoded Kind
			So(decoded.UnmarshalText(lo.Must(k.MarshalText())), ShouldBeNil)
			So(decoded, ShouldEqual, k)
		}

		var k Kind
		So(k.UnmarshalText([]byte("backup")), ShouldNotBeNil)
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given raw source records", t, func() {
		Convey("The current schema is normalized with its metadata", func() {
			expires := uint64(1700000000)
			v, err := Normalize(RawSource{
				Type:           "primary",
				SourceType:     "primary",
				Label:          lo.ToPtr("1080p"),
				URL:            "https://cdn.example/1080.m3u8",
				AssetKey:       "abc_1080",
				CDN:            "akamai",
				Pop:            "gru",
				Token:          "t0k",
				ExpirationTime: &expires,
			})
			So(err, ShouldBeNil)
			So(v.Kind, ShouldEqual, KindPrimary)
			So(v.Label, ShouldEqual, "1080p")
			So(v.AssetKey, ShouldEqual, "abc_1080")
			So(v.CDN, ShouldEqual, "akamai")
			So(v.ExpiresAt.MustGet(), ShouldEqual, expires)
		})

		Convey("The camelCase alias is honoured", func() {
			v, err := Normalize(RawSource{SourceTypeAlt: "fallback", URL: "u"})
			So(err, ShouldBeNil)
			So(v.Kind, ShouldEqual, KindFallback)
		})

		Convey("Unrecognised types normalize to unknown", func() {
			v, err := Normalize(RawSource{Type: "dash", URL: "u"})
			So(err, ShouldBeNil)
			So(v.Kind, ShouldEqual, KindUnknown)
		})

		Convey("Absent and empty labels are the same", func() {
			absent, _ := Normalize(RawSource{URL: "u"})
			empty, _ := Normalize(RawSource{URL: "u", Label: lo.ToPtr("")})
			So(absent.HasLabel(), ShouldBeFalse)
			So(empty.HasLabel(), ShouldBeFalse)
			So(absent, ShouldResemble, empty)
		})

		Convey("A missing url is a malformed source", func() {
			_, err := Normalize(RawSource{Type: "primary", Label: lo.ToPtr("720p")})
			So(errors.Is(err, ErrMalformedSource), ShouldBeTrue)

			_, err = Normalize(RawSource{URL: "   "})
			So(errors.Is(err, ErrMalformedSource), ShouldBeTrue)
		})
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	Convey("Normalizing a normalized record keeps its kind", t, func() {
		for _, raw := range []RawSource{
			{Type: "primary", URL: "a"},
			{SourceType: "fallback", URL: "b", Label: lo.ToPtr("480p")},
			{Type: "other", URL: "c"},
		} {
			first := lo.Must(Normalize(raw))
			second := lo.Must(Normalize(first.Raw()))
			So(second.Kind, ShouldEqual, first.Kind)
			So(second, ShouldResemble, first)
		}
	})
}

func TestNormalizeAll(t *testing.T) {
	Convey("NormalizeAll", t, func() {
		Convey("Keeps backend order", func() {
			vs, err := NormalizeAll([]RawSource{{URL: "a"}, {URL: "b"}, {URL: "c"}})
			So(err, ShouldBeNil)
			So(lo.Map(vs, func(v StreamVariant, _ int) string { return v.URL }), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("Fails as a whole on one malformed record", func() {
			vs, err := NormalizeAll([]RawSource{{URL: "a"}, {Label: lo.ToPtr("720p")}})
			So(vs, ShouldBeNil)
			So(errors.Is(err, ErrMalformedSource), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "source 1")
		})

		Convey("Accepts an empty list", func() {
			vs, err := NormalizeAll(nil)
			So(err, ShouldBeNil)
			So(vs, ShouldBeEmpty)
		})
	})
}
