// Package resolution pulls vertical-resolution hints out of stream labels, asset keys and URLs.
package resolution

import (
	"math"
	"regexp"
	"strconv"

	"github.com/gplay-cli/gplay/util"
	"github.com/samber/mo"
)

const group = "height"

var (
	// "1080p", "720p HD"
	progressive = regexp.MustCompile(`(?P<height>\d+)p`)
	// CDN rendition marker, width then height: "r360_1080"
	cdnMarker = regexp.MustCompile(`r\d+_(?P<height>\d+)`)
	// "/1080/", "_720.", ".480_"; RE2 has no lookaround so the trailing delimiter is consumed.
	delimited = regexp.MustCompile(`(?:^|[/._])(?P<height>\d{3,4})(?:[/._]|$)`)
)

// textRules apply to free text such as labels and asset keys.
var textRules = []*regexp.Regexp{progressive}

// urlRules apply to stream URLs, in priority order.
var urlRules = []*regexp.Regexp{progressive, cdnMarker, delimited}

// Extract returns the number immediately preceding a "p" in text.
func Extract(text string) mo.Option[uint] {
	return firstMatch(textRules, text)
}

// ExtractFromURL tries the progressive pattern, then a CDN rendition marker,
// then a standalone 3-4 digit path component.
func ExtractFromURL(url string) mo.Option[uint] {
	return firstMatch(urlRules, url)
}

// firstMatch returns the first in-range capture, scanning every occurrence of
// each rule before moving to the next one.
func firstMatch(rules []*regexp.Regexp, s string) mo.Option[uint] {
	for _, re := range rules {
		for _, groups := range util.ReGroups(re, s) {
			n, err := strconv.ParseUint(groups[group], 10, 64)
			if err != nil || n > math.MaxUint32 {
				continue
			}
			return mo.Some(uint(n))
		}
	}
	return mo.None[uint]()
}
