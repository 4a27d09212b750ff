package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"promoapi/internal/model"
)

const (
	// DefaultFetchTimeout bounds a single document fetch.
	DefaultFetchTimeout = 10 * time.Second
	// DefaultUserAgent identifies the service to the sites it reads.
	DefaultUserAgent = "Mozilla/5.0 (compatible; NewsletterTweetBot/1.0)"
	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes int64 = 5 << 20

	fetchStatusMessage    = "Failed to fetch the article. Please check the URL."
	fetchTransportMessage = "Could not connect to the URL. Please check if it's accessible."
)

// Fetcher retrieves a document over the network.
type Fetcher interface {
	// Fetch issues a GET for url. Transport failures and non-2xx statuses
	// are reported as model.ErrFetchFailed.
	Fetch(ctx context.Context, url string) (*model.SourceDocument, error)
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Ensure HTTPFetcher implements Fetcher at compile time.
var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher fetches documents with net/http. Client spans are emitted
// through otelhttp.
type HTTPFetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodyBytes limits how many bytes of the body are read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBodyBytes = n
		}
	}
}

// WithHTTPClient replaces the underlying client. Its Timeout is left as is.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// NewHTTPFetcher creates a new HTTPFetcher.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout:   f.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return f
}

// Fetch retrieves the document at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*model.SourceDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, model.WrapError(model.ErrInvalidURL, err, invalidURLMessage)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, model.WrapError(model.ErrFetchFailed, err, fetchTransportMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, model.WrapError(model.ErrFetchFailed,
			&StatusError{URL: url, StatusCode: resp.StatusCode}, fetchStatusMessage)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, model.WrapError(model.ErrFetchFailed, err, fetchTransportMessage)
	}

	return &model.SourceDocument{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
