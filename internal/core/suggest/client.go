package suggest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prixlens/prixlens/internal/core"
)

const defaultTimeout = 10 * time.Second

// FetchError reports a failed round trip to the suggestion service: either a
// non-200 status or a transport-level failure (DNS, refused connection,
// timeout). The orchestration layer maps any FetchError to "no suggestions";
// it is carried for diagnostics only.
type FetchError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e == nil {
		return "suggestion fetch failed"
	}
	if e.Err != nil {
		return fmt.Sprintf("suggestion fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("suggestion fetch failed: server returned %s", e.Status)
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Client performs suggestion lookups against a configured upstream. BaseURL
// is fixed at construction and never mutated afterwards.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// SearchURL builds the `/search` request URL for params. Each query-string
// value is percent-encoded independently so reserved characters and accented
// text survive the round trip. An empty library produces an empty encoded
// segment rather than an error; rejecting it is the caller's concern.
func (c *Client) SearchURL(params core.Params) (string, error) {
	base, err := url.Parse(strings.TrimRight(c.baseURL(), "/"))
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}

	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("library", params.Library)
	query.Set("price_type", params.PriceType)

	base.Path += "/search"
	base.RawQuery = query.Encode()
	return base.String(), nil
}

// Fetch performs one blocking GET against `/search` and returns the response
// body decoded as UTF-8 text. The upstream emits UTF-8 JSON with accented
// French designations, so the body bytes are converted directly instead of
// trusting any transport charset default. Exactly one round trip per call:
// no retries, no caching.
func (c *Client) Fetch(ctx context.Context, params core.Params) (string, error) {
	target, err := c.SearchURL(params)
	if err != nil {
		return "", &FetchError{Err: err}
	}
	return c.get(ctx, target)
}

// FetchLibraries retrieves the `/csv_files` payload as raw text.
func (c *Client) FetchLibraries(ctx context.Context) (string, error) {
	return c.get(ctx, strings.TrimRight(c.baseURL(), "/")+"/csv_files")
}

// FetchStatus retrieves the `/status` payload as raw text.
func (c *Client) FetchStatus(ctx context.Context) (string, error) {
	return c.get(ctx, strings.TrimRight(c.baseURL(), "/")+"/status")
}

func (c *Client) get(ctx context.Context, target string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &FetchError{Err: err}
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused, then surface the status.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &FetchError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Err: err}
	}

	return string(body), nil
}

func (c *Client) baseURL() string {
	if c != nil && strings.TrimSpace(c.BaseURL) != "" {
		return c.BaseURL
	}
	return "http://127.0.0.1:5000"
}

func (c *Client) httpClient() *http.Client {
	if c != nil && c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}

// AsFetchError unwraps err into a *FetchError when possible.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
