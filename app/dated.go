package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gplay-cli/gplay/api"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/log"
	"github.com/gplay-cli/gplay/source"
)

// DatedOptions drive RunDated. From and To are YYYY-MM-DD and optional.
type DatedOptions struct {
	TitleID     string
	From        string
	To          string
	PerPage     uint
	DownloadAll bool
	Format      Format
	// Quality and OutputDir apply to every batch download.
	Quality   string
	OutputDir string
	// Now anchors a missing From. Nil means time.Now.
	Now func() time.Time
}

// BatchReport lists the download ids of a batch by outcome.
type BatchReport struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// RunDated lists a title's videos in a date range and optionally downloads all of them.
// Only a failure to fetch the listing is returned; per-item failures end up in the report.
func RunDated(ctx context.Context, deps Deps, opts DatedOptions) (*source.DatedVideosResponse, *BatchReport, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	q, err := api.NewDateQuery(opts.TitleID, opts.From, opts.To, now())
	if err != nil {
		return nil, nil, err
	}
	q.PerPage = opts.PerPage

	fmt.Fprintf(
		deps.status(),
		"%s Fetching videos for title ID: %s from %s to %s\n",
		icon.Get(icon.Progress),
		q.TitleID,
		q.From.Format(api.DateLayout),
		q.To.Format(api.DateLayout),
	)

	listing, err := deps.Fetcher.FetchVideosByDate(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	if err := renderListing(deps.Out, listing, opts.Format, deps.width()); err != nil {
		return listing, nil, err
	}

	report := &BatchReport{}
	if !opts.DownloadAll {
		return listing, report, nil
	}

	if len(listing.Items) == 0 {
		fmt.Fprintf(deps.status(), "%s No videos found to download.\n", icon.Get(icon.Warn))
		return listing, report, nil
	}

	fmt.Fprintf(deps.status(), "%s Attempting to download all %d videos...\n", icon.Get(icon.Calendar), len(listing.Items))
	for _, item := range listing.Items {
		if err := ctx.Err(); err != nil {
			return listing, report, err
		}

		id := item.DownloadID()
		fmt.Fprintf(deps.status(), "%s %s (%s)\n", icon.Get(icon.Video), item.DisplayTitle(notAvailable), id)

		_, err := RunVideo(ctx, deps, VideoOptions{
			VideoID:   id,
			Download:  true,
			Quality:   opts.Quality,
			OutputDir: opts.OutputDir,
			Format:    opts.Format,
			Quiet:     true,
			AppendID:  true,
		})
		if err != nil {
			log.WithFields(map[string]any{"video": id}).Errorf("batch download failed: %s", err)
			fmt.Fprintf(deps.status(), "%s Failed to download video %s: %s\n", icon.Get(icon.Fail), id, err)
			report.Failed = append(report.Failed, id)
			continue
		}
		report.Succeeded = append(report.Succeeded, id)
	}

	return listing, report, nil
}
