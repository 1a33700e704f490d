// Package client implements the REST client for the pharmacy-rebate
// simulation backend. All list endpoints are cursor-paginated: the opaque
// continuation token from the previous page is passed back verbatim, and the
// response carries the page items, the next cursor and the authoritative
// total count.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/officine/remise-tui/feed"
)

// DefaultPageSize is the page length requested from every list endpoint.
const DefaultPageSize = 100

type Client struct {
	BaseURL    string
	Token      string
	PageSize   int
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:  baseURL,
		PageSize: DefaultPageSize,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.Token = token
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.get(ctx, "/health", nil)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &health, nil
}

// CatalogueFilter narrows the catalogue listing. Zero values mean "no filter".
type CatalogueFilter struct {
	LabID  int
	Search string
}

// ListCatalogue fetches one page of catalogue products.
func (c *Client) ListCatalogue(ctx context.Context, f CatalogueFilter, cursor feed.Cursor) (feed.Page[CatalogueProduct], error) {
	params := url.Values{}
	if f.LabID > 0 {
		params.Set("laboratoire_id", strconv.Itoa(f.LabID))
	}
	if f.Search != "" {
		params.Set("q", f.Search)
	}
	return getPage[CatalogueProduct](ctx, c, "/api/catalogue", params, cursor)
}

// SalesFilter narrows the sales listing. Zero values mean "no filter".
type SalesFilter struct {
	ImportID int
	Search   string
}

// ListSales fetches one page of imported sales rows.
func (c *Client) ListSales(ctx context.Context, f SalesFilter, cursor feed.Cursor) (feed.Page[SaleRow], error) {
	params := url.Values{}
	if f.ImportID > 0 {
		params.Set("import_id", strconv.Itoa(f.ImportID))
	}
	if f.Search != "" {
		params.Set("q", f.Search)
	}
	return getPage[SaleRow](ctx, c, "/api/ventes", params, cursor)
}

// MatchFilter narrows the matching-result listing. Zero values mean "no filter".
type MatchFilter struct {
	Status string // unique | ambiguous | new
	Search string
}

// ListMatches fetches one page of matching results.
func (c *Client) ListMatches(ctx context.Context, f MatchFilter, cursor feed.Cursor) (feed.Page[MatchRow], error) {
	params := url.Values{}
	if f.Status != "" {
		params.Set("statut", f.Status)
	}
	if f.Search != "" {
		params.Set("q", f.Search)
	}
	return getPage[MatchRow](ctx, c, "/api/matching/results", params, cursor)
}

// getPage performs one paginated GET and decodes the page envelope.
func getPage[T any](ctx context.Context, c *Client, path string, params url.Values, cursor feed.Cursor) (feed.Page[T], error) {
	var page feed.Page[T]
	if params == nil {
		params = url.Values{}
	}
	size := c.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	params.Set("limit", strconv.Itoa(size))
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	resp, err := c.get(ctx, path, params)
	if err != nil {
		return page, fmt.Errorf("list %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return page, c.parseError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return page, fmt.Errorf("decode %s: %w", path, err)
	}
	return page, nil
}

// -- HTTP helpers -------------------------------------------------------------

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
		return fmt.Errorf("API %d: %s", resp.StatusCode, apiErr.Detail)
	}
	return fmt.Errorf("API %d: %s", resp.StatusCode, string(body))
}
