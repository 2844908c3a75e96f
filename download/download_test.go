package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os/exec"
	"testing"

	"github.com/gplay-cli/gplay/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFFmpegArgs(t *testing.T) {
	Convey("Given an ffmpeg remuxer", t, func() {
		Convey("Without headers the command copies the stream", func() {
			args := FFmpeg{}.args("https://cdn.example/master.m3u8", "out/video.mp4")
			So(args, ShouldResemble, []string{
				"-y", "-hide_banner", "-loglevel", "error",
				"-i", "https://cdn.example/master.m3u8",
				"-c", "copy", "out/video.mp4",
			})
		})

		Convey("Headers are passed in a stable order", func() {
			f := FFmpeg{Headers: map[string]string{"User-Agent": "ua", "Referer": "https://ref"}}
			args := f.args("u", "d")
			So(args[4], ShouldEqual, "-headers")
			So(args[5], ShouldEqual, "Referer: https://ref\r\nUser-Agent: ua\r\n")
		})

		Convey("Cookies from the jar are sent for the stream host only", func() {
			jar, err := cookiejar.New(nil)
			So(err, ShouldBeNil)
			jar.SetCookies(&url.URL{Scheme: "https", Host: "cdn.example", Path: "/"}, []*http.Cookie{
				{Name: "GLBID", Value: "abc"},
				{Name: "session", Value: "xyz"},
			})

			f := FFmpeg{Headers: map[string]string{"User-Agent": "ua"}, Jar: jar}
			args := f.args("https://cdn.example/master.m3u8", "d")
			So(args[4], ShouldEqual, "-headers")
			So(args[5], ShouldContainSubstring, "Cookie: GLBID=abc; session=xyz\r\n")
			So(args[5], ShouldContainSubstring, "User-Agent: ua\r\n")
			So(f.Headers, ShouldNotContainKey, "Cookie")

			other := f.args("https://elsewhere.example/master.m3u8", "d")
			So(other[5], ShouldNotContainSubstring, "Cookie")
		})

		Convey("The default binary is ffmpeg", func() {
			So(FFmpeg{}.binary(), ShouldEqual, "ffmpeg")
			So(FFmpeg{Binary: "/opt/ffmpeg"}.binary(), ShouldEqual, "/opt/ffmpeg")
		})
	})
}

func TestRemuxFailure(t *testing.T) {
	Convey("A missing binary surfaces as a download error", t, func() {
		filesystem.SetMemMapFs()

		err := FFmpeg{Binary: "gplay-no-such-ffmpeg"}.Remux(context.Background(), "https://cdn.example/x.m3u8", "/out/x.mp4")

		var dlErr *Error
		So(errors.As(err, &dlErr), ShouldBeTrue)
		So(dlErr.Dest, ShouldEqual, "/out/x.mp4")
		So(errors.Is(err, exec.ErrNotFound), ShouldBeTrue)

		exists, _ := filesystem.API().DirExists("/out")
		So(exists, ShouldBeTrue)
	})

	Convey("Urls that look like flags are refused", t, func() {
		err := FFmpeg{}.Remux(context.Background(), "-version", "x.mp4")
		So(err, ShouldNotBeNil)
	})
}

func TestError(t *testing.T) {
	Convey("Error carries the diagnostic", t, func() {
		err := &Error{Binary: "/usr/bin/ffmpeg", Dest: "a.mp4", Diagnostic: "403 Forbidden", Err: errors.New("exit status 1")}
		So(err.Error(), ShouldEqual, "ffmpeg failed to write a.mp4: exit status 1: 403 Forbidden")
	})

	Convey("Long diagnostics keep their tail", t, func() {
		long := make([]byte, diagnosticLimit+10)
		for i := range long {
			long[i] = 'a'
		}
		long[len(long)-1] = 'z'
		got := tail(string(long), diagnosticLimit)
		So(len(got), ShouldEqual, diagnosticLimit+3)
		So(got[len(got)-1], ShouldEqual, byte('z'))
	})
}

func TestCheckInstalled(t *testing.T) {
	Convey("An unknown binary is reported as not installed", t, func() {
		_, err := CheckInstalled("gplay-no-such-ffmpeg")
		So(errors.Is(err, ErrNotInstalled), ShouldBeTrue)
	})
}

func TestFilename(t *testing.T) {
	Convey("Filename", t, func() {
		So(Filename("Jornal Nacional", "123", ""), ShouldEqual, "Jornal_Nacional.mp4")
		So(Filename("a/b: c?", "123", ".mkv"), ShouldEqual, "a_b_c.mkv")
		So(Filename("", "123", "mp4"), ShouldEqual, "123.mp4")
		So(Filename("???", "", ""), ShouldEqual, "video.mp4")
	})
}
