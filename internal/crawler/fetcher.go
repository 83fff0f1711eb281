package crawler

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nao1215/tgscrape/internal/config"
)

// NoCursor requests the newest history page. Post ids start at 1, so 0 is
// never a real pagination boundary.
const NoCursor int64 = 0

// Fetcher retrieves one history page.
// cursor is the exclusive upper id bound of the page, or NoCursor.
type Fetcher interface {
	Fetch(ctx context.Context, cursor int64) (string, error)
}

// HTTPFetcher fetches history pages of one channel over HTTP.
// It performs exactly one GET per call and never retries; retry policy
// belongs to the caller.
type HTTPFetcher struct {
	// client carries the per-request timeout.
	client *http.Client

	// channelURL is the newest-page URL, e.g. https://t.me/s/channel.
	channelURL string

	userAgent      string
	accept         string
	acceptLanguage string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the HTTP client. The caller's client keeps its own
// timeout; WithTimeout applied afterwards overrides it.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client = client
	}
}

// WithTimeout sets the timeout for a single request.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client.Timeout = d
	}
}

// WithHeaders sets the User-Agent, Accept and Accept-Language request headers.
// Empty values keep the defaults.
func WithHeaders(userAgent, accept, acceptLanguage string) FetcherOption {
	return func(f *HTTPFetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
		if accept != "" {
			f.accept = accept
		}
		if acceptLanguage != "" {
			f.acceptLanguage = acceptLanguage
		}
	}
}

// WithMaxBodySize sets the maximum response body size. Non-positive values
// keep the default.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *HTTPFetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// NewHTTPFetcher creates a fetcher for the given channel page URL.
func NewHTTPFetcher(channelURL string, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:         &http.Client{Timeout: config.DefaultTimeout},
		channelURL:     channelURL,
		userAgent:      config.DefaultUserAgent,
		accept:         config.DefaultAccept,
		acceptLanguage: config.DefaultAcceptLanguage,
		maxBodySize:    config.DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// PageURL returns the URL of the page below cursor.
func (f *HTTPFetcher) PageURL(cursor int64) string {
	if cursor == NoCursor {
		return f.channelURL
	}
	q := url.Values{}
	q.Set("before", strconv.FormatInt(cursor, 10))
	return f.channelURL + "?" + q.Encode()
}

// Fetch retrieves the page below cursor and returns its body.
// Every failure is returned as a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, cursor int64) (string, error) {
	pageURL := f.PageURL(cursor)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", f.accept)
	req.Header.Set("Accept-Language", f.acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}

	return string(body), nil
}
