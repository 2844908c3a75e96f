package source

import "github.com/samber/mo"

// VideoSession is the playable state of one video.
type VideoSession struct {
	SessionID mo.Option[string] `json:"session_id"`
	// Sources keeps backend order, which is not quality-sorted. It may be empty.
	Sources  []StreamVariant     `json:"sources"`
	Resource mo.Option[Resource] `json:"resource"`
	Metadata mo.Option[Metadata] `json:"metadata"`

	ThumbsPreviewBaseURL string `json:"thumbs_preview_base_url,omitempty"`
	ThumbsURL            string `json:"thumbs_url,omitempty"`
}

// Resource is display metadata attached to a session.
type Resource struct {
	ID   mo.Option[string] `json:"id"`
	Name mo.Option[string] `json:"name"`
}

// DisplayName returns the resource name, or fallback when it is absent or empty.
func (r Resource) DisplayName(fallback string) string {
	if name := r.Name.OrEmpty(); name != "" {
		return name
	}
	return fallback
}

// Title returns the best display title the session carries, or fallback.
func (s *VideoSession) Title(fallback string) string {
	if r, ok := s.Resource.Get(); ok {
		if name := r.DisplayName(""); name != "" {
			return name
		}
	}
	if m, ok := s.Metadata.Get(); ok && m.Title != "" {
		return m.Title
	}
	return fallback
}

// ResourceID returns the resource identifier, or fallback.
func (s *VideoSession) ResourceID(fallback string) string {
	if r, ok := s.Resource.Get(); ok {
		if id := r.ID.OrEmpty(); id != "" {
			return id
		}
	}
	return fallback
}

// Metadata describes the video behind a session. All fields are display data.
type Metadata struct {
	ID                uint64 `json:"id,omitempty"`
	Title             string `json:"title,omitempty"`
	Description       string `json:"description,omitempty"`
	Type              string `json:"type,omitempty"`
	Duration          uint64 `json:"duration,omitempty"`
	Program           string `json:"program,omitempty"`
	ProgramID         uint64 `json:"program_id,omitempty"`
	Channel           string `json:"channel,omitempty"`
	ChannelID         uint64 `json:"channel_id,omitempty"`
	Category          string `json:"category,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	ExhibitedAt       string `json:"exhibited_at,omitempty"`
	URLForConsumption string `json:"url_for_consumption,omitempty"`
	Codec             string `json:"codec,omitempty"`
	MaxHeight         uint64 `json:"max_height,omitempty"`
}
