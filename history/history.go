// Package history keeps a record of completed downloads.
package history

import (
	"sort"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved record keyed by video and destination.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// List returns saved records, most recent first.
func List() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SavedAt.After(records[j].SavedAt)
	})
	return records, nil
}

// Save adds record, replacing an earlier download of the same video to the same path.
func Save(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[record.encode()] = record
	return cacher.Set(saved)
}

// Remove deletes record from the history.
func Remove(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}

// Clear drops every record.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}
