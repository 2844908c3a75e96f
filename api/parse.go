package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gplay-cli/gplay/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Shape selects how a listing document is laid out.
type Shape int

const (
	// ShapeAuto picks ShapeGraphQL when the document has a top-level "data" or "errors" key.
	ShapeAuto Shape = iota
	// ShapeFlat is a top-level {items, count, next} document.
	ShapeFlat
	// ShapeGraphQL nests the listing under data.title.structure.excerpts.resources.
	ShapeGraphQL
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeGraphQL:
		return "graphql"
	default:
		return "auto"
	}
}

// graphQLPath is where the listing lives inside a GraphQL document.
var graphQLPath = []string{"data", "title", "structure", "excerpts", "resources"}

type sessionDocument struct {
	Session              flexString         `json:"session"`
	Sources              []source.RawSource `json:"sources"`
	Resource             *resourceDocument  `json:"resource"`
	Metadata             *source.Metadata   `json:"metadata"`
	ThumbsPreviewBaseURL string             `json:"thumbs_preview_base_url"`
	ThumbsURL            string             `json:"thumbs_url"`
}

type resourceDocument struct {
	ID   flexString `json:"id"`
	Name flexString `json:"name"`
}

// ParseSession decodes a video-session response. A single malformed source fails the whole session.
func ParseSession(body []byte) (*source.VideoSession, error) {
	var doc sessionDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	sources, err := source.NormalizeAll(doc.Sources)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	session := &source.VideoSession{
		SessionID:            mo.PointerToOption(doc.Session.ptr()),
		Sources:              sources,
		Metadata:             mo.PointerToOption(doc.Metadata),
		ThumbsPreviewBaseURL: doc.ThumbsPreviewBaseURL,
		ThumbsURL:            doc.ThumbsURL,
	}

	if doc.Resource != nil {
		session.Resource = mo.Some(source.Resource{
			ID:   mo.PointerToOption(doc.Resource.ID.ptr()),
			Name: mo.PointerToOption(doc.Resource.Name.ptr()),
		})
	}

	return session, nil
}

type itemDocument struct {
	ID                flexString `json:"id"`
	Title             string     `json:"title"`
	Headline          string     `json:"headline"`
	Summary           string     `json:"summary"`
	DateFormated      string     `json:"date_formated"`
	FormattedDate     string     `json:"formattedDate"`
	DurationFormatted string     `json:"duration_formatted"`
	DurationSeconds   flexUint   `json:"duration_seconds"`
	Duration          flexUint   `json:"duration"`
	CustomID          flexString `json:"custom_id"`
	ResourceID        flexString `json:"resource_id"`
	VideoURL          string     `json:"video_url"`
}

func (d itemDocument) item() source.DatedVideoItem {
	duration := d.DurationSeconds
	if !duration.Present {
		duration = d.Duration
	}

	return source.DatedVideoItem{
		ID:                d.ID.Value,
		Title:             d.Title,
		Headline:          d.Headline,
		Summary:           d.Summary,
		FormattedDate:     lo.Ternary(d.DateFormated != "", d.DateFormated, d.FormattedDate),
		DurationFormatted: d.DurationFormatted,
		DurationSeconds:   duration.Value,
		CustomID:          d.CustomID.Value,
		ResourceID:        d.ResourceID.Value,
		VideoURL:          d.VideoURL,
	}
}

type listingDocument struct {
	Items *[]json.RawMessage `json:"items"`
	Count flexUint           `json:"count"`
	Next  flexString         `json:"next"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// ParseListing decodes a date-range listing laid out as shape.
func ParseListing(body []byte, shape Shape) (*source.DatedVideosResponse, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if shape == ShapeAuto {
		_, hasData := top["data"]
		_, hasErrors := top["errors"]
		shape = lo.Ternary(hasData || hasErrors, ShapeGraphQL, ShapeFlat)
	}

	if shape == ShapeFlat {
		return parseFlat(body)
	}
	return parseGraphQL(top)
}

func parseFlat(body []byte) (*source.DatedVideosResponse, error) {
	var doc listingDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if doc.Items == nil {
		return nil, fmt.Errorf("%w: items", ErrMissingExpectedField)
	}

	items, err := parseItems(*doc.Items)
	if err != nil {
		return nil, err
	}

	response := &source.DatedVideosResponse{Items: items}
	if doc.Count.Present {
		response.Count = mo.Some(doc.Count.Value)
	}
	response.Next = mo.PointerToOption(doc.Next.ptr())
	return response, nil
}

func parseGraphQL(top map[string]json.RawMessage) (*source.DatedVideosResponse, error) {
	if raw, ok := top["errors"]; ok && isNull(top["data"]) {
		var errs []graphQLError
		if err := json.Unmarshal(raw, &errs); err == nil && len(errs) > 0 {
			messages := lo.FilterMap(errs, func(e graphQLError, _ int) (string, bool) {
				return e.Message, e.Message != ""
			})
			return nil, fmt.Errorf("%w: %s", ErrAPI, strings.Join(messages, "; "))
		}
	}

	node := top
	var resources json.RawMessage
	for i, segment := range graphQLPath {
		raw, ok := node[segment]
		if !ok || isNull(raw) {
			return nil, fmt.Errorf("%w: %s", ErrMissingExpectedField, strings.Join(graphQLPath[:i+1], "."))
		}

		if i == len(graphQLPath)-1 {
			resources = raw
			break
		}

		// A segment that is not an object cannot lead to resources.
		node = nil
		if err := json.Unmarshal(raw, &node); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingExpectedField, strings.Join(graphQLPath[:i+1], "."))
		}
	}

	// resources is either the item array itself or a flat listing object.
	if trimmed := bytes.TrimSpace(resources); len(trimmed) > 0 && trimmed[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		items, err := parseItems(raws)
		if err != nil {
			return nil, err
		}
		return &source.DatedVideosResponse{Items: items}, nil
	}

	return parseFlat(resources)
}

func parseItems(raws []json.RawMessage) ([]source.DatedVideoItem, error) {
	items := make([]source.DatedVideoItem, 0, len(raws))
	for i, raw := range raws {
		var doc itemDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrDecode, i, err)
		}
		if !doc.ID.Present {
			return nil, fmt.Errorf("%w: item %d: id", ErrMissingExpectedField, i)
		}
		items = append(items, doc.item())
	}
	return items, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

type errorDocument struct {
	Message string     `json:"message"`
	Code    flexString `json:"code"`
}

// ParseError extracts the message of a {message, code} error body.
func ParseError(body []byte) mo.Option[string] {
	var doc errorDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc.Message == "" {
		return mo.None[string]()
	}

	if doc.Code.Present {
		return mo.Some(fmt.Sprintf("%s (%s)", doc.Message, doc.Code.Value))
	}
	return mo.Some(doc.Message)
}
