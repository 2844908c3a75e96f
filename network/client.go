// Package network builds the HTTP client shared by every request to the platform.
package network

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/gplay-cli/gplay/constant"
)

// Options configures NewClient. Zero values fall back to sensible defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Cookies are loaded into the jar before the first request.
	Cookies []*http.Cookie
	// Fingerprint enables the Chrome TLS transport.
	Fingerprint bool
	// Transport overrides the base transport, mostly for tests.
	Transport http.RoundTripper
}

// DefaultHeaders are sent with every request unless the request already sets them.
func DefaultHeaders(userAgent string) http.Header {
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	h := http.Header{}
	h.Set("User-Agent", userAgent)
	h.Set("Origin", constant.SiteOrigin)
	h.Set("Referer", constant.SiteOrigin+"/")
	h.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	h.Set("x-platform-id", constant.PlatformID)
	h.Set("x-device-id", constant.DeviceID)
	return h
}

// NewClient returns a client with default headers, a cookie jar and the configured transport.
func NewClient(opts Options) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	setCookies(jar, opts.Cookies)

	base := opts.Transport
	if base == nil {
		if opts.Fingerprint {
			base = NewFingerprintTransport(opts.Timeout)
		} else {
			base = newTransport()
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &http.Client{
		Timeout: timeout,
		Jar:     jar,
		Transport: &headerTransport{
			base:    base,
			headers: DefaultHeaders(opts.UserAgent),
		},
	}, nil
}

// headerTransport fills in default headers without overriding those already set.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for name, values := range t.headers {
		if req.Header.Get(name) == "" {
			req.Header[name] = values
		}
	}
	return t.base.RoundTrip(req)
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
