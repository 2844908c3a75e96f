package constant

// Remote endpoints.
const (
	PlaybackBaseURL  = "https://playback.video.globo.com"
	GraphQLBaseURL   = "https://cloud-jarvis.globo.com/graphql"
	ThumbnailBaseURL = "https://s02.video.glbimg.com"
	SiteOrigin       = "https://globoplay.globo.com"
)

// VideoSessionPath is appended to PlaybackBaseURL for session lookups.
const VideoSessionPath = "/v4/video-session"

// Persisted GraphQL query used for the date-range listing.
const (
	VideosByDateOperation = "getTitleVideosByDateView"
	VideosByDateHash      = "d4d95fd5770f9672dc1247e3343c13cafff725f339c95eb28c6e61dac9501c5d"
)

// Request identity headers expected by the platform.
const (
	TenantID   = "globo-play"
	PlatformID = "web"
	DeviceID   = "desktop"
)
