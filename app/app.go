// Package app runs the video and listing flows on top of the api client and a remuxer.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/gplay-cli/gplay/api"
	"github.com/gplay-cli/gplay/history"
	"github.com/gplay-cli/gplay/source"
	"github.com/gplay-cli/gplay/util"
)

// ErrNoSuitableVariant is reported when a download was requested but no stream could be selected.
var ErrNoSuitableVariant = errors.New("no suitable stream")

// Fetcher is satisfied by *api.Client.
type Fetcher interface {
	FetchVideoSession(ctx context.Context, videoID, quality string) (*source.VideoSession, error)
	FetchVideosByDate(ctx context.Context, q api.DateQuery) (*source.DatedVideosResponse, error)
}

// Remuxer is satisfied by download.FFmpeg.
type Remuxer interface {
	Remux(ctx context.Context, url, dest string) error
}

// Deps are the collaborators of every flow.
type Deps struct {
	Fetcher Fetcher
	Remuxer Remuxer
	// Out receives command results.
	Out io.Writer
	// Status receives progress lines. Nil discards them.
	Status io.Writer
	// Record persists completed downloads. Nil skips persistence.
	Record func(*history.Record) error
	// Width wraps compact output. Zero means the terminal width.
	Width int
}

func (d Deps) status() io.Writer {
	if d.Status == nil {
		return io.Discard
	}
	return d.Status
}

func (d Deps) width() int {
	if d.Width > 0 {
		return d.Width
	}
	return util.TerminalWidth(80)
}
