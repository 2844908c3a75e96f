package api

import (
	"sync"
	"time"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/source"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type listingEntry struct {
	StoredAt time.Time                   `json:"stored_at"`
	Response *source.DatedVideosResponse `json:"response"`
}

type listingData struct {
	Listings map[string]*listingEntry `json:"listings"`
}

// ListingCache keeps listing responses on disk for a limited time.
type ListingCache struct {
	internal *gache.Cache[*listingData]
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewListingCache stores entries at path. A non-positive ttl disables caching.
func NewListingCache(path string, ttl time.Duration) *ListingCache {
	return &ListingCache{
		internal: gache.New[*listingData](
			&gache.Options{
				Path:       path,
				FileSystem: &filesystem.GacheFs{},
			},
		),
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached response for q if it is still fresh.
func (c *ListingCache) Get(q DateQuery) mo.Option[*source.DatedVideosResponse] {
	if c == nil || c.ttl <= 0 {
		return mo.None[*source.DatedVideosResponse]()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[*source.DatedVideosResponse]()
	}

	entry, ok := data.Listings[q.String()]
	if !ok || entry.Response == nil || c.now().Sub(entry.StoredAt) > c.ttl {
		return mo.None[*source.DatedVideosResponse]()
	}

	return mo.Some(entry.Response)
}

// Set stores response for q and prunes stale entries.
func (c *ListingCache) Set(q DateQuery, response *source.DatedVideosResponse) error {
	if c == nil || c.ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}
	if expired || data == nil || data.Listings == nil {
		data = &listingData{Listings: make(map[string]*listingEntry)}
	}

	now := c.now()
	for k, entry := range data.Listings {
		if now.Sub(entry.StoredAt) > c.ttl {
			delete(data.Listings, k)
		}
	}

	data.Listings[q.String()] = &listingEntry{StoredAt: now, Response: response}
	return c.internal.Set(data)
}
