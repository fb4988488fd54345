// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpResponse(t *testing.T) {
	resp := &http.Response{
		StatusCode: 429,
		Header: http.Header{
			"X-Ratelimit-Remaining": {"0"},
			"Content-Type":          {"application/json"},
		},
	}

	out := DumpResponse(resp, []byte(`{"error": "quota"}`))

	assert.Contains(t, out, "status=429")
	assert.Contains(t, out, `Content-Type="application/json"`)
	assert.Contains(t, out, `X-Ratelimit-Remaining="0"`)
	assert.Contains(t, out, `body={"error": "quota"}`)
	// Headers are emitted in sorted order for stable messages.
	assert.Less(t, strings.Index(out, "Content-Type"), strings.Index(out, "X-Ratelimit-Remaining"))
}

func TestDumpResponseTruncatesBody(t *testing.T) {
	resp := &http.Response{StatusCode: 500, Header: http.Header{}}
	out := DumpResponse(resp, []byte(strings.Repeat("x", 2000)))

	assert.Contains(t, out, "...")
	assert.Less(t, len(out), 700)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"empty", "", ""},
		{"short key fully masked", "abc123", "***"},
		{"long key keeps edges", "abcdefghijklmnop", "abcdefgh...mnop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskKey(tt.key))
		})
	}
}
