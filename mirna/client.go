package mirna

import (
	"net/http"
	"net/url"

	"github.com/gregjones/httpcache"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

// DefaultBaseURL is the address of a miRNA API running on the local machine.
const DefaultBaseURL = "http://localhost:8080/api"

// Client issues read-only requests against the miRNA REST API.
// A Client is immutable once built and safe for concurrent use.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	cache       httpcache.Cache
	registry    metrics.Registry
	userAgent   string
	emptyBearer bool
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client used to send requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// ScopedCache is a store that keeps entries apart per Authorization header.
// Scope returns the view used for requests carrying authorization, which
// is empty when the request has no Authorization header.
type ScopedCache interface {
	httpcache.Cache
	Scope(authorization string) httpcache.Cache
}

// WithCache routes requests through an RFC 7234 caching transport backed
// by the given store. Cache keys are built from the URL only, so the
// server must send "Vary: Authorization" if responses differ per token.
// A store that implements ScopedCache is used through Scope, one view per
// credential.
func WithCache(cache httpcache.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithRegistry sets the registry that receives request timers and error counters
func WithRegistry(r metrics.Registry) Option {
	return func(c *Client) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithEmptyBearer makes the client send "Authorization: Bearer " even when
// no credential is given. Without it the header is omitted.
func WithEmptyBearer() Option {
	return func(c *Client) {
		c.emptyBearer = true
	}
}

// New creates a client for the API rooted at baseURL, e.g. DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		registry:   metrics.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cache != nil {
		var transport http.RoundTripper
		if scoped, ok := c.cache.(ScopedCache); ok {
			transport = &scopedTransport{next: c.httpClient.Transport, cache: scoped}
		} else {
			t := httpcache.NewTransport(c.cache)
			t.Transport = c.httpClient.Transport
			transport = t
		}

		hc := *c.httpClient
		hc.Transport = transport
		c.httpClient = &hc
	}

	return c, nil
}

// BaseURL returns the address all endpoint paths are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Registry returns the metrics registry the client reports to
func (c *Client) Registry() metrics.Registry {
	return c.registry
}

// scopedTransport picks the cache view matching each request's credential.
type scopedTransport struct {
	next  http.RoundTripper
	cache ScopedCache
}

func (t *scopedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ct := httpcache.NewTransport(t.cache.Scope(req.Header.Get("Authorization")))
	ct.Transport = t.next
	return ct.RoundTrip(req)
}
