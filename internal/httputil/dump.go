// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP diagnostics helpers shared by the client
// and the CLI.
package httputil

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// maxDumpBody bounds how much of a response body a debug dump includes.
const maxDumpBody = 500

// DumpResponse renders the status code, headers, and a bounded prefix of
// the body for debug-mode error messages. The body is passed separately
// because callers have already drained it. Headers are sorted so dumps
// are stable across runs.
func DumpResponse(resp *http.Response, body []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status=%d", resp.StatusCode)

	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, strings.Join(resp.Header.Values(k), ","))
	}

	fmt.Fprintf(&b, " body=%s", Truncate(string(body), maxDumpBody))
	return b.String()
}

// Truncate shortens s to at most max bytes, appending "..." when cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// MaskKey renders a credential for display without revealing it: long
// keys keep a short prefix and suffix, short non-empty keys become "***".
func MaskKey(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) > 12:
		return key[:8] + "..." + key[len(key)-4:]
	default:
		return "***"
	}
}
