package history

import (
	"fmt"
	"time"

	"github.com/gplay-cli/gplay/source"
)

// Record is one completed download.
type Record struct {
	VideoID string    `json:"video_id"`
	Title   string    `json:"title"`
	Label   string    `json:"label,omitempty"`
	Kind    string    `json:"kind"`
	URL     string    `json:"url"`
	Path    string    `json:"path"`
	SavedAt time.Time `json:"saved_at"`
}

// NewRecord describes variant of videoID saved at path.
func NewRecord(videoID, title string, variant source.StreamVariant, path string) *Record {
	return &Record{
		VideoID: videoID,
		Title:   title,
		Label:   variant.Label,
		Kind:    variant.Kind.String(),
		URL:     variant.URL,
		Path:    path,
		SavedAt: time.Now(),
	}
}

// encode keys records by video and destination, so re-downloading to the same file replaces the entry.
func (r *Record) encode() string {
	return fmt.Sprintf("%s (%s)", r.VideoID, r.Path)
}

func (r *Record) String() string {
	if r.Label == "" {
		return fmt.Sprintf("%s : %s", r.Title, r.Path)
	}
	return fmt.Sprintf("%s [%s] : %s", r.Title, r.Label, r.Path)
}
