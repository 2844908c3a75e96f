// Package download hands selected streams to an external remuxer.
package download

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/log"
	"github.com/gplay-cli/gplay/util"
)

// DefaultExtension is the container every remux produces.
const DefaultExtension = ".mp4"

// diagnosticLimit caps how much remuxer stderr an Error keeps.
const diagnosticLimit = 2048

var ErrNotInstalled = errors.New("remuxer not installed")

// Remuxer copies a stream into a local file without re-encoding.
type Remuxer interface {
	Remux(ctx context.Context, url, dest string) error
}

// Error is a failed remux, with what the tool printed.
type Error struct {
	Binary     string
	Dest       string
	Diagnostic string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s failed to write %s: %s", filepath.Base(e.Binary), e.Dest, e.Err)
	if e.Diagnostic != "" {
		msg += ": " + e.Diagnostic
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FFmpeg remuxes with an ffmpeg binary.
type FFmpeg struct {
	// Binary is a name on PATH or an absolute path. Empty means "ffmpeg".
	Binary string
	// Headers are forwarded to every segment request.
	Headers map[string]string
	// Jar, when set, supplies the Cookie header for the stream URL.
	Jar http.CookieJar
}

func (f FFmpeg) binary() string {
	if f.Binary == "" {
		return "ffmpeg"
	}
	return f.Binary
}

// headersFor merges the static headers with the jar cookies for rawURL.
func (f FFmpeg) headersFor(rawURL string) map[string]string {
	headers := make(map[string]string, len(f.Headers)+1)
	for name, value := range f.Headers {
		headers[name] = value
	}

	if f.Jar == nil {
		return headers
	}
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return headers
	}

	cookies := f.Jar.Cookies(u)
	if len(cookies) == 0 {
		return headers
	}
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	headers["Cookie"] = strings.Join(pairs, "; ")
	return headers
}

// args builds the command line. Existing files are overwritten.
func (f FFmpeg) args(url, dest string) []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error"}

	if headers := f.headersFor(url); len(headers) > 0 {
		names := make([]string, 0, len(headers))
		for name := range headers {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		for _, name := range names {
			fmt.Fprintf(&b, "%s: %s\r\n", name, headers[name])
		}
		args = append(args, "-headers", b.String())
	}

	return append(args, "-i", url, "-c", "copy", dest)
}

// Remux writes url to dest, creating the destination directory if needed.
func (f FFmpeg) Remux(ctx context.Context, url, dest string) error {
	if strings.HasPrefix(url, "-") {
		return fmt.Errorf("refusing stream url %q", url)
	}

	if dir := filepath.Dir(dest); dir != "" {
		if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.binary(), f.args(url, dest)...)
	cmd.Stdout = nil
	cmd.Stderr = &stderr

	log.WithFields(map[string]any{"binary": f.binary(), "dest": dest}).Info("remuxing")

	if err := cmd.Run(); err != nil {
		return &Error{
			Binary:     f.binary(),
			Dest:       dest,
			Diagnostic: tail(stderr.String(), diagnosticLimit),
			Err:        err,
		}
	}

	return nil
}

func tail(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return "..." + s[len(s)-limit:]
}

// CheckInstalled resolves binary on PATH.
func CheckInstalled(binary string) (string, error) {
	if binary == "" {
		binary = "ffmpeg"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotInstalled, binary, err)
	}
	return path, nil
}

// Filename returns a safe file name for title, or for fallbackID when title sanitizes to nothing.
func Filename(title, fallbackID, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	name := util.SanitizeFilename(title)
	if name == "" {
		name = util.SanitizeFilename(fallbackID)
	}
	if name == "" {
		name = "video"
	}

	return name + ext
}
