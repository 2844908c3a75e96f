// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Downloads - these keys govern stream selection and the external remuxer.
const (
	DownloadsQuality = "downloads.quality"
	DownloadsPath    = "downloads.path"
	DownloadsFFmpeg  = "downloads.ffmpeg"
)

// Output rendering for command results.
const (
	OutputFormat = "output.format"
)

// Network - these keys configure the shared HTTP client.
const (
	NetworkCookieFile     = "network.cookie_file"
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
	NetworkUserAgent      = "network.user_agent"
)

// Listing queries.
const (
	ListingPerPage  = "listing.per_page"
	CacheListingTTL = "cache.listing_ttl"
)

// History Tracking - these keys configure the persistence of completed downloads.
const (
	HistorySave = "history.save"
)

// Search Interaction - these keys control title completion suggestions.
const (
	SearchShowSuggestions = "search.show_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite  = "logs.write"
	LogsLevel  = "logs.level"
	LogsJson   = "logs.json"
	LogsStderr = "logs.stderr"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
