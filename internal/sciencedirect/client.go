// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sciencedirect is a typed client for the Elsevier ScienceDirect
// Search and Article Retrieval APIs. It issues one request per call,
// normalizes the provider's irregular JSON into Article values, and maps
// HTTP failure modes to a sentinel error taxonomy.
package sciencedirect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pdiddy/scidirect/internal/httputil"
	"github.com/pdiddy/scidirect/pkg/types"
)

// Endpoint base URLs. Declared as vars so tests can substitute an
// httptest server.
var (
	searchBase  = "https://api.elsevier.com/content/search/sciencedirect"
	articleBase = "https://api.elsevier.com/content/article/pii"
)

const (
	// maxCount is the provider's documented ceiling on results per request.
	maxCount = 200

	// defaultCount is used when the caller passes a non-positive limit.
	defaultCount = 10

	defaultTimeout = 30 * time.Second
)

// Client calls the ScienceDirect API. It holds no mutable state, so a
// single Client may be used concurrently; each call opens one short-lived
// request bounded by the configured timeout.
type Client struct {
	cfg        types.ClientConfig
	httpClient *http.Client
}

// NewClient validates the configuration and builds a client. It fails
// with ErrConfiguration before any network call when the API key is
// missing.
func NewClient(cfg types.ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: Elsevier API key is required (set ELSEVIER_API_KEY)", ErrConfiguration)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Search queries the search endpoint and returns zero or more articles.
// limit is clamped to the provider ceiling of 200. Zero matches yields
// an empty slice, never an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]types.Article, error) {
	count := limit
	if count <= 0 {
		count = defaultCount
	}
	if count > maxCount {
		count = maxCount
	}

	params := url.Values{
		"query":      {query},
		"count":      {strconv.Itoa(count)},
		"httpAccept": {"application/json"},
	}

	body, err := c.get(ctx, searchBase+"?"+params.Encode(), false)
	if err != nil {
		return nil, err
	}
	return parseSearchResults(body)
}

// Article retrieves one article by its PII. A 404 from the provider
// surfaces as ErrNotFound.
func (c *Client) Article(ctx context.Context, pii string) (types.Article, error) {
	body, err := c.get(ctx, articleBase+"/"+url.PathEscape(pii), true)
	if err != nil {
		return types.Article{}, err
	}
	return parseArticle(body)
}

// get performs one GET with the authentication headers, maps non-2xx
// statuses through the error taxonomy, and returns the response body.
// byID selects the 404→ErrNotFound mapping used by the article endpoint.
func (c *Client) get(ctx context.Context, reqURL string, byID bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-ELS-APIKey", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.AuthToken != "" {
		req.Header.Set("X-ELS-Authtoken", c.cfg.AuthToken)
	}
	if c.cfg.InstToken != "" {
		req.Header.Set("X-ELS-Insttoken", c.cfg.InstToken)
	}

	c.debugf("GET %s", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	c.debugf("response status %d (%d bytes)", resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp, body, byID)
	}
	return body, nil
}

// statusError maps a non-2xx response onto the taxonomy. Debug mode
// attaches the status line, headers, and body to the message.
func (c *Client) statusError(resp *http.Response, body []byte, byID bool) error {
	kind := ErrUpstream
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = ErrAuthentication
	case http.StatusTooManyRequests:
		kind = ErrRateLimited
	case http.StatusNotFound:
		if byID {
			kind = ErrNotFound
		}
	}

	detail := ""
	if c.cfg.Debug {
		detail = httputil.DumpResponse(resp, body)
	}
	return &StatusError{Kind: kind, StatusCode: resp.StatusCode, Detail: detail}
}

// debugf writes a diagnostic line to stderr when debug mode is on.
func (c *Client) debugf(format string, args ...any) {
	if !c.cfg.Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
}
