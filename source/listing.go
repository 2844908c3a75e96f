package source

import "github.com/samber/mo"

// DatedVideoItem is one entry of a date-range listing. Only ID is guaranteed.
type DatedVideoItem struct {
	ID                string `json:"id"`
	Title             string `json:"title,omitempty"`
	Headline          string `json:"headline,omitempty"`
	Summary           string `json:"summary,omitempty"`
	FormattedDate     string `json:"date_formated,omitempty"`
	DurationFormatted string `json:"duration_formatted,omitempty"`
	DurationSeconds   uint   `json:"duration_seconds,omitempty"`
	CustomID          string `json:"custom_id,omitempty"`
	ResourceID        string `json:"resource_id,omitempty"`
	// VideoURL points at the video page, not at a stream.
	VideoURL string `json:"video_url,omitempty"`
}

// DownloadID is the identifier to request a session for: the resource id when present, else the item id.
func (i DatedVideoItem) DownloadID() string {
	if i.ResourceID != "" {
		return i.ResourceID
	}
	return i.ID
}

// DisplayTitle returns the headline, then the title, then fallback.
func (i DatedVideoItem) DisplayTitle(fallback string) string {
	switch {
	case i.Headline != "":
		return i.Headline
	case i.Title != "":
		return i.Title
	default:
		return fallback
	}
}

// DatedVideosResponse is a single page of a date-range listing, in backend order.
type DatedVideosResponse struct {
	Items []DatedVideoItem  `json:"items"`
	Count mo.Option[uint]   `json:"count"`
	Next  mo.Option[string] `json:"next"`
}
