package npm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dferrans/pkgreach/pkg/httputil"
	"github.com/dferrans/pkgreach/pkg/registry"
)

// MaxPageSize is the registry's hard cap on search page size.
const MaxPageSize = 250

// DefaultBaseURL is the public npm registry endpoint.
const DefaultBaseURL = "https://registry.npmjs.org"

// Client fetches search results from the npm registry API.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a search client against the public registry with a
// file-based response cache using the given TTL.
func NewClient(cacheTTL time.Duration) (*Client, error) {
	cache, err := httputil.NewCache("", cacheTTL)
	if err != nil {
		return nil, err
	}
	return NewClientWithBase(DefaultBaseURL, cache), nil
}

// NewClientWithBase creates a search client for a specific registry base URL.
// Useful for mirrors and tests.
func NewClientWithBase(baseURL string, cache *httputil.Cache) *Client {
	return &Client{
		Client:  registry.NewClient(cache, nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Search fetches one page of search results for query. Pages are zero-based;
// size is clamped to [MaxPageSize]. The relevance weighting is pinned to pure
// popularity, matching how outreach candidates are ranked.
//
// Results come back in arrival order. A response without an `objects` field
// is reported as a retryable [registry.ErrMalformed].
func (c *Client) Search(ctx context.Context, query string, page, size int, refresh bool) ([]Package, error) {
	if size <= 0 || size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 0 {
		page = 0
	}
	key := fmt.Sprintf("search:%s:%d:%d", query, page, size)

	var pkgs []Package
	err := c.Cached(ctx, key, refresh, &pkgs, func() error {
		return c.fetch(ctx, query, page, size, &pkgs)
	})
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (c *Client) fetch(ctx context.Context, query string, page, size int, pkgs *[]Package) error {
	url := fmt.Sprintf(
		"%s/-/v1/search?size=%d&popularity=1.0&quality=0.0&maintenance=0.0&text=%s&from=%d",
		c.baseURL, size, registry.URLEncode(query), page*size,
	)

	var data searchResponse
	if err := c.Get(ctx, url, &data); err != nil {
		return err
	}
	if data.Objects == nil {
		return &httputil.RetryableError{
			Err: fmt.Errorf("%w: missing objects field", registry.ErrMalformed),
		}
	}

	results := make([]Package, 0, len(*data.Objects))
	for _, obj := range *data.Objects {
		results = append(results, obj.Package)
	}
	*pkgs = results
	return nil
}

// searchResponse is the search endpoint envelope. Objects is a pointer so an
// absent field (nil) is distinguishable from an empty result page.
type searchResponse struct {
	Objects *[]searchObject `json:"objects"`
	Total   int             `json:"total"`
}

type searchObject struct {
	Package     Package     `json:"package"`
	Score       searchScore `json:"score"`
	SearchScore float64     `json:"searchScore"`
}

type searchScore struct {
	Final  float64 `json:"final"`
	Detail struct {
		Quality     float64 `json:"quality"`
		Popularity  float64 `json:"popularity"`
		Maintenance float64 `json:"maintenance"`
	} `json:"detail"`
}
