// Package gateway is a content source that reads passages from the Bible
// Gateway print interface over HTTP.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/fetch"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

const (
	// DefaultBaseURL is the public Bible Gateway site.
	DefaultBaseURL = "https://www.biblegateway.com"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 15 * time.Second

	userAgent = "DailyBread/1.0 (+https://github.com/FocuswithJustin/DailyBread)"

	// maxBody bounds the size of a response body.
	maxBody = 8 << 20
)

var _ fetch.Source = (*Client)(nil)

// Client fetches passages from Bible Gateway.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRateLimit limits outbound requests to rps per second with the given
// burst. A non-positive rps removes the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New returns a Client for the site at baseURL; an empty baseURL means
// DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &errors.ValidationError{Field: "base_url", Message: fmt.Sprintf("invalid URL %q", baseURL)}
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchRange searches for query in version and returns every passage on the
// result page. A search that matches nothing yields no passages.
func (c *Client) FetchRange(ctx context.Context, version, query string, opts passage.FormattingOptions) ([]passage.Passage, error) {
	params := url.Values{
		"search":    {query},
		"version":   {version},
		"interface": {"print"},
	}
	body, err := c.get(ctx, "/passage/", params)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := html.Parse(body)
	if err != nil {
		return nil, &errors.ParseError{Format: "HTML", Path: query, Message: err.Error(), Err: err}
	}
	var found []passage.Passage
	for _, p := range extract(doc, opts) {
		if p.Text != "" {
			found = append(found, p)
		}
	}
	return found, nil
}

type votdResponse struct {
	Votd struct {
		Reference  string `json:"reference"`
		DisplayRef string `json:"display_ref"`
	} `json:"votd"`
}

// FetchFeatured reads the verse of the day and fetches its text with the
// same formatting as any other passage.
func (c *Client) FetchFeatured(ctx context.Context, version string, opts passage.FormattingOptions) (passage.Passage, error) {
	body, err := c.get(ctx, "/votd/get/", url.Values{"format": {"json"}, "version": {version}})
	if err != nil {
		return passage.Passage{}, err
	}
	defer body.Close()

	var resp votdResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return passage.Passage{}, &errors.ParseError{Format: "verse of the day", Message: err.Error(), Err: err}
	}
	ref := resp.Votd.DisplayRef
	if ref == "" {
		ref = resp.Votd.Reference
	}
	if ref == "" {
		return passage.Passage{}, errors.NewPassageNotFound("verse of the day")
	}

	passages, err := c.FetchRange(ctx, version, ref, opts)
	if err != nil {
		return passage.Passage{}, err
	}
	if len(passages) == 0 {
		return passage.Passage{}, errors.NewPassageNotFound(ref)
	}
	return passages[0], nil
}

// get waits for the rate limiter and issues a GET request. The caller closes
// the returned body.
func (c *Client) get(ctx context.Context, path string, params url.Values) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimSuffix(c.baseURL.Path, "/") + path})
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if id := logging.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewIO("request", u.Path, err)
	}
	logging.DebugContext(ctx, "gateway_request",
		"path", u.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.NewIO("request", u.Path, fmt.Errorf("unexpected status %s", resp.Status))
	}
	return readCloser{Reader: io.LimitReader(resp.Body, maxBody), Closer: resp.Body}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
