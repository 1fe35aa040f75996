// Package bing provides a websearch.Client backed by the Bing Web Search v7
// REST API.
package bing

import (
	"context"
	"encoding/json"
	"fmt"
	"homefinder/pkg/domain"
	"homefinder/pkg/serrors"
	"homefinder/pkg/websearch"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultEndpoint is the public Bing Web Search endpoint.
	DefaultEndpoint = "https://api.bing.microsoft.com/v7.0/search"
	// DefaultCount is the number of results requested when Options.Count is zero.
	DefaultCount = 10
	// DefaultResponseFilter restricts answers to web pages.
	DefaultResponseFilter = "WebPages"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key" //nolint: gosec
)

// Options configure the client.
type Options struct {
	Endpoint       string
	APIKey         string
	Count          int
	ResponseFilter string
}

// Client talks to the Bing Web Search API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// Ensure Client conforms to the websearch.Client interface at compile time.
var _ websearch.Client = (*Client)(nil)

// New constructs a Client using httpClient for transport. Zero-valued options
// fall back to the package defaults.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Count <= 0 {
		opts.Count = DefaultCount
	}
	if opts.ResponseFilter == "" {
		opts.ResponseFilter = DefaultResponseFilter
	}

	return &Client{httpClient: httpClient, opts: opts}
}

type searchResponse struct {
	WebPages *struct {
		Value []struct {
			Name    string `json:"name"`
			Snippet string `json:"snippet"`
			URL     string `json:"url"`
		} `json:"value"`
	} `json:"webPages"`
}

// Search issues one GET request for query. Any status other than 200 yields
// a *websearch.ProviderError carrying the status and body, classified as
// serrors.ErrSearchProvider. A response without a webPages object yields no
// results.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	// https://learn.microsoft.com/en-us/bing/search-apis/bing-web-search/reference/query-parameters
	u, err := url.Parse(c.opts.Endpoint)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrSearchProvider, err, "could not parse endpoint")
	}
	params := u.Query()
	params.Set("q", query)
	params.Set("count", strconv.Itoa(c.opts.Count))
	params.Set("responseFilter", c.opts.ResponseFilter)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrSearchProvider, err, "could not create request")
	}
	req.Header.Set(subscriptionKeyHeader, c.opts.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrSearchProvider, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrSearchProvider, err, "could not read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serrors.Wrap(serrors.ErrSearchProvider, &websearch.ProviderError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}, "search failed")
	}

	var sr searchResponse
	if err := json.Unmarshal(b, &sr); err != nil {
		return nil, serrors.Wrap(serrors.ErrSearchProvider, err, "could not decode response")
	}
	if sr.WebPages == nil {
		return []domain.SearchResultItem{}, nil
	}

	n := min(len(sr.WebPages.Value), c.opts.Count)
	out := make([]domain.SearchResultItem, 0, n)
	for _, v := range sr.WebPages.Value[:n] {
		out = append(out, domain.SearchResultItem{
			Title:   v.Name,
			Snippet: v.Snippet,
			Link:    v.URL,
		})
	}

	return out, nil
}

// String hides the API key when the client is printed.
func (c *Client) String() string {
	return fmt.Sprintf("bing.Client{endpoint: %s, count: %d}", c.opts.Endpoint, c.opts.Count)
}
