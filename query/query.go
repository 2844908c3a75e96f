// Package query remembers title identifiers used with date listings and offers them back as completions.
package query

import (
	"strings"
	"sync"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Title is a remembered title identifier with an optional display name.
type Title struct {
	Rank int    `json:"rank"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Completion renders the title the way shells show completions, "id<TAB>description".
func (t *Title) Completion() string {
	if t.Name == "" {
		return t.ID
	}
	return t.ID + "\t" + t.Name
}

var cacher = gache.New[map[string]*Title](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	suggestionCache = make(map[string][]*Title)
	suggestionMu    sync.Mutex
)

// Remember records a use of titleID, adding weight to its rank. A non-empty name replaces the stored one.
func Remember(titleID, name string, weight int) error {
	titleID = sanitize(titleID)
	if titleID == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*Title)
	}

	if record, ok := cached[titleID]; ok {
		record.Rank += weight
		if name != "" {
			record.Name = name
		}
	} else {
		cached[titleID] = &Title{Rank: weight, ID: titleID, Name: name}
	}

	suggestionMu.Lock()
	suggestionCache = make(map[string][]*Title)
	suggestionMu.Unlock()

	return cacher.Set(cached)
}

// Suggest returns the best ranked title matching q.
func Suggest(q string) mo.Option[*Title] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[*Title]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered titles whose id or name fuzzily matches q, highest rank first.
func SuggestMany(q string) []*Title {
	if !viper.GetBool(key.SearchShowSuggestions) {
		return []*Title{}
	}

	q = sanitize(q)

	suggestionMu.Lock()
	defer suggestionMu.Unlock()

	if prev, ok := suggestionCache[q]; ok {
		return prev
	}

	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return []*Title{}
	}

	records := lo.Filter(lo.Values(cached), func(t *Title, _ int) bool {
		return fuzzy.Match(q, t.ID) || fuzzy.MatchFold(q, t.Name)
	})

	slices.SortFunc(records, func(a, b *Title) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.ID, b.ID)
	})

	suggestionCache[q] = records
	return records
}

// Completions returns shell completion entries for q.
func Completions(q string) []string {
	return lo.Map(SuggestMany(q), func(t *Title, _ int) string {
		return t.Completion()
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
