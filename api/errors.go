// Package api talks to the playback and GraphQL endpoints and decodes their responses.
package api

import "errors"

var (
	// ErrMissingExpectedField is returned when a mandatory part of a response is absent.
	ErrMissingExpectedField = errors.New("missing expected field")
	// ErrDecode wraps JSON decoding failures.
	ErrDecode = errors.New("failed to decode response")
	// ErrHTTP is returned for non-2xx responses the server did not explain.
	ErrHTTP = errors.New("http error")
	// ErrAPI carries a message reported by the server itself.
	ErrAPI = errors.New("api error")
)
