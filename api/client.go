package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/log"
	"github.com/gplay-cli/gplay/source"
)

// Client fetches sessions and listings. The zero value is not usable, see New.
type Client struct {
	HTTP         *http.Client
	PlaybackBase string
	GraphQLBase  string
	// Listings is optional; nil disables listing caching.
	Listings *ListingCache
}

// New returns a client for the production endpoints.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HTTP:         httpClient,
		PlaybackBase: constant.PlaybackBaseURL,
		GraphQLBase:  constant.GraphQLBaseURL,
	}
}

type sessionRequest struct {
	PlayerType        string          `json:"player_type"`
	VideoID           string          `json:"video_id"`
	Quality           string          `json:"quality"`
	ContentProtection string          `json:"content_protection"`
	VSID              string          `json:"vsid"`
	TZ                string          `json:"tz"`
	Capabilities      capabilities    `json:"capabilities"`
	Consumption       string          `json:"consumption"`
	Metadata          requestMetadata `json:"metadata"`
	Version           int             `json:"version"`
}

type capabilities struct {
	LowLatency bool `json:"low_latency"`
}

type requestMetadata struct {
	Name   string        `json:"name"`
	Device requestDevice `json:"device"`
}

type requestDevice struct {
	Type string   `json:"type"`
	OS   struct{} `json:"os"`
}

func newSessionRequest(videoID, quality string) sessionRequest {
	return sessionRequest{
		PlayerType:        constant.DeviceID,
		VideoID:           videoID,
		Quality:           quality,
		ContentProtection: "widevine",
		VSID:              uuid.NewString(),
		TZ:                "-03:00",
		Capabilities:      capabilities{LowLatency: true},
		Consumption:       "streaming",
		Metadata: requestMetadata{
			Name:   constant.PlatformID,
			Device: requestDevice{Type: constant.DeviceID},
		},
		Version: 1,
	}
}

// FetchVideoSession requests the playable session of videoID.
func (c *Client) FetchVideoSession(ctx context.Context, videoID, quality string) (*source.VideoSession, error) {
	payload, err := json.Marshal(newSessionRequest(videoID, quality))
	if err != nil {
		return nil, err
	}

	endpoint := c.PlaybackBase + constant.VideoSessionPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.WithFields(map[string]any{"video": videoID, "url": endpoint}).Debug("fetching video session")

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("video session %s: %w", videoID, err)
	}

	return ParseSession(body)
}

type persistedQuery struct {
	Version    int    `json:"version"`
	SHA256Hash string `json:"sha256Hash"`
}

type listingVariables struct {
	TitleID string `json:"titleId"`
	From    string `json:"gte"`
	To      string `json:"lte"`
	Page    uint   `json:"page"`
	PerPage uint   `json:"perPage"`
}

func (c *Client) listingURL(q DateQuery) (string, error) {
	variables, err := json.Marshal(listingVariables{
		TitleID: q.TitleID,
		From:    q.From.Format(DateLayout),
		To:      q.To.Format(DateLayout),
		Page:    q.page(),
		PerPage: q.perPage(),
	})
	if err != nil {
		return "", err
	}

	extensions, err := json.Marshal(map[string]persistedQuery{
		"persistedQuery": {Version: 1, SHA256Hash: constant.VideosByDateHash},
	})
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("operationName", constant.VideosByDateOperation)
	params.Set("variables", string(variables))
	params.Set("extensions", string(extensions))

	return c.GraphQLBase + "?" + params.Encode(), nil
}

// FetchVideosByDate requests a single page of the title's videos within the query range.
func (c *Client) FetchVideosByDate(ctx context.Context, q DateQuery) (*source.DatedVideosResponse, error) {
	if cached, ok := c.Listings.Get(q).Get(); ok {
		log.WithFields(map[string]any{"query": q.String()}).Debug("listing served from cache")
		return cached, nil
	}

	endpoint, err := c.listingURL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-tenant-id", constant.TenantID)
	req.Header.Set("x-platform-id", constant.PlatformID)
	req.Header.Set("x-device-id", constant.DeviceID)

	log.WithFields(map[string]any{"query": q.String(), "url": endpoint}).Debug("fetching videos by date")

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("videos of %s: %w", q.TitleID, err)
	}

	response, err := ParseListing(body, ShapeAuto)
	if err != nil {
		return nil, err
	}

	if err := c.Listings.Set(q, response); err != nil {
		log.Warnf("failed to cache listing %s: %s", q, err)
	}

	return response, nil
}

// do runs req and returns the body of a 2xx response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	log.WithFields(map[string]any{
		"status": resp.StatusCode,
		"bytes":  len(body),
	}).Debug("response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if message, ok := ParseError(body).Get(); ok {
			return nil, fmt.Errorf("%w: %s", ErrAPI, message)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrHTTP, resp.Status, bytes.TrimSpace(body))
	}

	return body, nil
}
