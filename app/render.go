package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gplay-cli/gplay/source"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const notAvailable = "N/A"

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// renderSession prints the whole session unless the format is compact and full is false.
func renderSession(w io.Writer, session *source.VideoSession, videoID string, format Format, full bool) error {
	switch {
	case format == FormatPretty:
		return writeJSON(w, session, true)
	case format == FormatJSON || full:
		return writeJSON(w, session, false)
	}

	var b strings.Builder
	if r, ok := session.Resource.Get(); ok {
		fmt.Fprintf(&b, "Title: %s\n", r.DisplayName(notAvailable))
		fmt.Fprintf(&b, "ID: %s\n", r.ID.OrElse(notAvailable))
	} else {
		fmt.Fprintf(&b, "Video ID: %s\n", videoID)
	}

	b.WriteString("Available Streams:\n")
	for _, v := range session.Sources {
		label := v.Label
		if label == "" {
			label = notAvailable
		}
		fmt.Fprintf(&b, "  - %s %s %s\n", v.Kind, label, v.URL)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderListing prints the items of a listing. Compact output wraps summaries to width.
func renderListing(w io.Writer, listing *source.DatedVideosResponse, format Format, width int) error {
	switch format {
	case FormatPretty:
		return writeJSON(w, listing.Items, true)
	case FormatJSON:
		return writeJSON(w, listing.Items, false)
	}

	if len(listing.Items) == 0 {
		_, err := io.WriteString(w, "No videos found\n")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d videos:\n", len(listing.Items))
	for _, item := range listing.Items {
		date := item.FormattedDate
		if date == "" {
			date = notAvailable
		}
		fmt.Fprintf(&b, "  ID: %s, Title: %s, Date: %s\n", item.ID, item.DisplayTitle(notAvailable), date)

		if item.Summary != "" && width > 8 {
			wrapped := wordwrap.String(item.Summary, width-4)
			b.WriteString(indent.String(wrapped, 4))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
