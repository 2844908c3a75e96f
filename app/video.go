package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gplay-cli/gplay/download"
	"github.com/gplay-cli/gplay/history"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/log"
	"github.com/gplay-cli/gplay/quality"
	"github.com/gplay-cli/gplay/source"
	"github.com/samber/mo"
)

// VideoOptions drive RunVideo.
type VideoOptions struct {
	VideoID  string
	Download bool
	// Filename overrides the name derived from the session title.
	Filename  string
	Quality   string
	OutputDir string
	// Full prints the whole session whatever the format.
	Full   bool
	Format Format
	// Quiet skips printing the session, used by batch downloads.
	Quiet bool
	// AppendID suffixes the derived file name with the video ID, so batch
	// items sharing a title land in separate files.
	AppendID bool
}

// VideoResult is what RunVideo fetched and, when downloading, what it wrote.
type VideoResult struct {
	Session *source.VideoSession
	Variant mo.Option[source.StreamVariant]
	// Path is empty unless a download completed.
	Path string
}

// RunVideo fetches the session of a video, prints it and optionally downloads the selected stream.
func RunVideo(ctx context.Context, deps Deps, opts VideoOptions) (*VideoResult, error) {
	fmt.Fprintf(deps.status(), "%s Fetching video session for ID: %s\n", icon.Get(icon.Progress), opts.VideoID)

	session, err := deps.Fetcher.FetchVideoSession(ctx, opts.VideoID, opts.Quality)
	if err != nil {
		return nil, err
	}

	result := &VideoResult{Session: session}

	if !opts.Quiet {
		if err := renderSession(deps.Out, session, opts.VideoID, opts.Format, opts.Full); err != nil {
			return result, err
		}
	}

	if !opts.Download {
		return result, nil
	}

	result.Variant = quality.Select(session.Sources, opts.Quality)
	variant, ok := result.Variant.Get()
	if !ok {
		return result, fmt.Errorf("%w for quality %q", ErrNoSuitableVariant, opts.Quality)
	}
	if !quality.IsSentinel(opts.Quality) && !strings.Contains(variant.Label, opts.Quality) {
		log.Warnf("no stream labelled %q, falling back to %s", opts.Quality, variant)
	}

	title := session.Title("")
	if opts.AppendID && title != "" {
		title += "_" + opts.VideoID
	}
	name := opts.Filename
	if name == "" {
		name = download.Filename(title, opts.VideoID, download.DefaultExtension)
	}
	dest := filepath.Join(opts.OutputDir, name)

	log.WithFields(map[string]any{
		"video":   opts.VideoID,
		"variant": variant.String(),
		"dest":    dest,
	}).Info("downloading")
	fmt.Fprintf(deps.status(), "%s Downloading %s to %s\n", icon.Get(icon.Download), variant, dest)

	if err := deps.Remuxer.Remux(ctx, variant.URL, dest); err != nil {
		return result, err
	}
	result.Path = dest

	fmt.Fprintf(deps.status(), "%s Download complete: %s\n", icon.Get(icon.Success), dest)

	if deps.Record != nil {
		record := history.NewRecord(opts.VideoID, session.Title(opts.VideoID), variant, dest)
		if err := deps.Record(record); err != nil {
			log.Warnf("failed to record download of %s: %s", opts.VideoID, err)
		}
	}

	return result, nil
}
