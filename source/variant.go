// Package source defines the domain models for playable video sessions and dated listings.
package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// ErrMalformedSource is returned when a backend source record lacks its playable URL.
var ErrMalformedSource = errors.New("malformed source")

// RawSource is a stream record as it appears on the wire. Field names differ
// between schema versions; every field but URL is optional.
type RawSource struct {
	Type           string  `json:"type,omitempty"`
	SourceType     string  `json:"source_type,omitempty"`
	SourceTypeAlt  string  `json:"sourceType,omitempty"`
	Label          *string `json:"label,omitempty"`
	URL            string  `json:"url"`
	AssetKey       string  `json:"asset_key,omitempty"`
	CDN            string  `json:"cdn,omitempty"`
	Pop            string  `json:"pop,omitempty"`
	Token          string  `json:"token,omitempty"`
	ExpirationTime *uint64 `json:"expiration_time,omitempty"`
}

// StreamVariant is one playable rendition of a video.
type StreamVariant struct {
	Kind Kind `json:"kind"`
	// Label is empty when the backend sent none.
	Label    string `json:"label,omitempty"`
	URL      string `json:"url"`
	AssetKey string `json:"asset_key,omitempty"`

	// Transport metadata, passed through untouched.
	CDN       string            `json:"cdn,omitempty"`
	Pop       string            `json:"pop,omitempty"`
	Token     string            `json:"token,omitempty"`
	ExpiresAt mo.Option[uint64] `json:"expires_at"`
}

// HasLabel reports whether the variant carries a non-empty label.
func (v StreamVariant) HasLabel() bool {
	return v.Label != ""
}

func (v StreamVariant) String() string {
	if v.HasLabel() {
		return fmt.Sprintf("%s %s", v.Kind, v.Label)
	}
	return v.Kind.String()
}

// Raw converts the variant back into its wire form.
func (v StreamVariant) Raw() RawSource {
	raw := RawSource{
		URL:      v.URL,
		AssetKey: v.AssetKey,
		CDN:      v.CDN,
		Pop:      v.Pop,
		Token:    v.Token,
	}
	if v.Kind != KindUnknown {
		raw.Type = v.Kind.String()
	}
	if v.HasLabel() {
		label := v.Label
		raw.Label = &label
	}
	if expires, ok := v.ExpiresAt.Get(); ok {
		raw.ExpirationTime = &expires
	}
	return raw
}

// Normalize maps a raw record to a StreamVariant.
func Normalize(raw RawSource) (StreamVariant, error) {
	url := strings.TrimSpace(raw.URL)
	if url == "" {
		return StreamVariant{}, fmt.Errorf("%w: missing url", ErrMalformedSource)
	}

	v := StreamVariant{
		Kind:     KindOf(raw.Type, raw.SourceType, raw.SourceTypeAlt),
		URL:      url,
		AssetKey: raw.AssetKey,
		CDN:      raw.CDN,
		Pop:      raw.Pop,
		Token:    raw.Token,
	}
	if raw.Label != nil {
		v.Label = *raw.Label
	}
	if raw.ExpirationTime != nil {
		v.ExpiresAt = mo.Some(*raw.ExpirationTime)
	}
	return v, nil
}

// NormalizeAll normalizes every record in order. The first malformed record
// aborts the whole batch.
func NormalizeAll(raws []RawSource) ([]StreamVariant, error) {
	variants := make([]StreamVariant, 0, len(raws))
	for i, raw := range raws {
		v, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		variants = append(variants, v)
	}
	return variants, nil
}
