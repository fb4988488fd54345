// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sciencedirect

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes the client surfaces. Callers
// match them with errors.Is; the client never returns partial data
// alongside one of these.
var (
	// ErrConfiguration indicates the client was constructed without a
	// required credential. No request is attempted.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthentication indicates the API key or token was rejected (HTTP 401).
	ErrAuthentication = errors.New("authentication failed")

	// ErrRateLimited indicates the provider throttled the request (HTTP 429).
	ErrRateLimited = errors.New("rate limited")

	// ErrNotFound indicates the requested article does not exist
	// (HTTP 404 from the by-PII endpoint).
	ErrNotFound = errors.New("article not found")

	// ErrUpstream indicates any other non-2xx response.
	ErrUpstream = errors.New("upstream request failed")

	// ErrTransport indicates a network-level failure before a complete
	// response arrived.
	ErrTransport = errors.New("transport failure")
)

// StatusError wraps a taxonomy sentinel with the HTTP status that
// produced it. Detail carries the response body and headers when the
// client runs in debug mode; otherwise it stays empty so upstream
// internals do not leak into user-facing messages.
type StatusError struct {
	Kind       error
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: HTTP %d (enable debug mode for details)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%v: HTTP %d: %s", e.Kind, e.StatusCode, e.Detail)
}

// Unwrap exposes the sentinel so errors.Is sees through the wrapper.
func (e *StatusError) Unwrap() error { return e.Kind }
