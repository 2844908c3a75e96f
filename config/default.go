package config

import (
	"sort"

	"github.com/gplay-cli/gplay/key"
	"github.com/samber/lo"
)

var fields = []Field{
	{key.DownloadsQuality, "max", "Preferred stream quality.\nA label such as 720p, or one of: max, high, min, low"},
	{key.DownloadsPath, ".", "Directory where downloaded videos are written"},
	{key.DownloadsFFmpeg, "ffmpeg", "ffmpeg executable used to remux streams"},

	{key.OutputFormat, "pretty", "Output format for command results.\nAvailable options are: json, pretty, compact"},

	{key.NetworkCookieFile, "", "Path to a Netscape cookie file used to authenticate requests"},
	{key.NetworkTimeout, 60, "HTTP request timeout in seconds"},
	{key.NetworkTLSFingerprint, false, "Send API requests with a browser TLS fingerprint"},
	{key.NetworkUserAgent, "", "Override the User-Agent header.\nLeave empty to use the built-in browser string"},

	{key.ListingPerPage, 20, "Number of videos requested by videos-by-date"},
	{key.CacheListingTTL, 10, "Minutes to cache videos-by-date responses. 0 disables the cache"},

	{key.HistorySave, true, "Record completed downloads in the history file"},
	{key.SearchShowSuggestions, true, "Suggest previously used title IDs on shell completion"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

	{key.LogsWrite, false, "Write logs to a file under the logs directory"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.LogsStderr, false, "Mirror log entries to stderr"},

	{key.CliColored, true, "Enable colored help output"},
	{key.CliVersionCheck, false, "Check for new releases when printing help or version"},
}

// Default maps every registered key to its field.
var Default = lo.KeyBy(fields, func(f Field) string {
	return f.Key
})

// EnvExposed lists the keys that can be set from the environment.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string {
	return f.Key
})

// Keys returns the registered keys in sorted order.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

func init() {
	if dup := lo.FindDuplicates(EnvExposed); len(dup) > 0 {
		panic("duplicate config keys: " + dup[0])
	}
}
