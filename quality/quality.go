// Package quality picks one stream variant out of a session according to a quality preference.
//
// Precedence, first rule with a result wins:
//
//  1. a literal preference ("720p") matches the first variant whose label contains it;
//  2. "max"/"high" picks the highest resolution, "min"/"low" the lowest, among
//     primary variants when there are any and among all variants otherwise;
//  3. with no resolution signal at all, the first primary variant, else the first variant.
//
// A literal preference that matches no label falls through to "max".
package quality

import (
	"strings"

	"github.com/gplay-cli/gplay/resolution"
	"github.com/gplay-cli/gplay/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Sentinel preferences.
const (
	Max  = "max"
	High = "high"
	Min  = "min"
	Low  = "low"
)

type direction int

const (
	none direction = iota
	highest
	lowest
)

func directionOf(preference string) direction {
	switch strings.ToLower(strings.TrimSpace(preference)) {
	case Max, High, "":
		return highest
	case Min, Low:
		return lowest
	default:
		return none
	}
}

// IsSentinel reports whether preference is one of max, high, min or low, or empty.
func IsSentinel(preference string) bool {
	return directionOf(preference) != none
}

// Select returns the variant best matching preference, or None for an empty input.
func Select(sources []source.StreamVariant, preference string) mo.Option[source.StreamVariant] {
	if len(sources) == 0 {
		return mo.None[source.StreamVariant]()
	}

	dir := directionOf(preference)
	if !IsSentinel(preference) {
		if v, ok := lo.Find(sources, func(v source.StreamVariant) bool {
			return v.HasLabel() && strings.Contains(v.Label, preference)
		}); ok {
			return mo.Some(v)
		}
		dir = highest
	}

	pool := primaries(sources)
	if len(pool) == 0 {
		pool = sources
	}

	if v, ok := extreme(pool, dir).Get(); ok {
		return mo.Some(v)
	}

	return mo.Some(pool[0])
}

// Resolve computes the resolution of a variant from its label, then its URL, then its asset key.
func Resolve(v source.StreamVariant) mo.Option[uint] {
	if r, ok := resolution.Extract(v.Label).Get(); ok {
		return mo.Some(r)
	}
	if r, ok := resolution.ExtractFromURL(v.URL).Get(); ok {
		return mo.Some(r)
	}
	// Asset keys are path-like tokens ("vod_r720_1080"), so they get the URL rules.
	return resolution.ExtractFromURL(v.AssetKey)
}

func primaries(sources []source.StreamVariant) []source.StreamVariant {
	return lo.Filter(sources, func(v source.StreamVariant, _ int) bool {
		return v.Kind == source.KindPrimary
	})
}

// extreme scans in input order; only a strictly better resolution replaces the current best.
func extreme(pool []source.StreamVariant, dir direction) mo.Option[source.StreamVariant] {
	var (
		best    source.StreamVariant
		bestRes uint
		found   bool
	)

	for _, v := range pool {
		res, ok := Resolve(v).Get()
		if !ok {
			continue
		}

		better := !found ||
			(dir == highest && res > bestRes) ||
			(dir == lowest && res < bestRes)
		if better {
			best, bestRes, found = v, res, true
		}
	}

	if !found {
		return mo.None[source.StreamVariant]()
	}
	return mo.Some(best)
}
