package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// FingerprintTransport sends requests over TLS connections that present a
// Chrome client hello. HTTP/2 is tried first; requests fall back to HTTP/1.1
// when the h2 round trip fails.
type FingerprintTransport struct {
	h2      *http2.Transport
	h1      *http.Transport
	timeout time.Duration
}

// NewFingerprintTransport returns a transport whose dials give up after timeout.
func NewFingerprintTransport(timeout time.Duration) *FingerprintTransport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	t := &FingerprintTransport{timeout: timeout}
	t.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return t.dial(ctx, network, addr, nil)
		},
	}
	t.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return t.dial(ctx, network, addr, []string{"http/1.1"})
		},
	}
	return t
}

func (t *FingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// Bodies are consumed by the failed attempt; only retry what can be replayed.
	retry := req
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, err
		}
		retry = req.Clone(req.Context())
		retry.Body = body
	}

	return t.h1.RoundTrip(retry)
}

func (t *FingerprintTransport) dial(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: t.timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
