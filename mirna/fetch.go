package mirna

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Fetch sends a single GET request to the endpoint with name as its query
// parameter and credential as a bearer token. The response is returned
// exactly as the HTTP client produced it: non-2xx statuses are not errors
// and transport errors are not wrapped. The caller must close the body.
func (c *Client) Fetch(ctx context.Context, ep Endpoint, name, credential string) (*http.Response, error) {
	req, err := c.newRequest(ctx, ep, name, credential)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("endpoint", ep.Name).
		Str("url", req.URL.String()).
		Bool("authorized", req.Header.Get("Authorization") != "").
		Msg("Sending miRNA API request")

	timer := metrics.GetOrRegisterTimer(fmt.Sprintf("mirna.client.%s.requests", ep.Name), c.registry)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	timer.UpdateSince(start)
	if err != nil {
		metrics.GetOrRegisterCounter(fmt.Sprintf("mirna.client.%s.errors", ep.Name), c.registry).Inc(1)
		return resp, err
	}

	logger.Debug().
		Str("endpoint", ep.Name).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Bool("cached", resp.Header.Get(httpcacheHeader) == "1").
		Msg("Received miRNA API response")

	return resp, nil
}

// FetchMiRNAByName fetches miRNA entries by name
func (c *Client) FetchMiRNAByName(ctx context.Context, name, credential string) (*http.Response, error) {
	return c.Fetch(ctx, MiRNAByName, name, credential)
}

// FetchPredictions fetches gene predictions for a miRNA
func (c *Client) FetchPredictions(ctx context.Context, name, credential string) (*http.Response, error) {
	return c.Fetch(ctx, Predictions, name, credential)
}

// FetchPathwaysByGene fetches pathways affected by a given gene
func (c *Client) FetchPathwaysByGene(ctx context.Context, name, credential string) (*http.Response, error) {
	return c.Fetch(ctx, PathwaysByGene, name, credential)
}

// header set by the caching transport on responses served from cache
const httpcacheHeader = "X-From-Cache"

func (c *Client) newRequest(ctx context.Context, ep Endpoint, name, credential string) (*http.Request, error) {
	u := c.baseURL.JoinPath(ep.Path)

	q := u.Query()
	q.Set(ep.Param, name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s request", ep.Name)
	}

	if credential != "" || c.emptyBearer {
		token := &oauth2.Token{AccessToken: credential}
		token.SetAuthHeader(req)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}
