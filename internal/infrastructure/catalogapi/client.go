package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/catalogsync/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the catalog API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client implements the CatalogProvider interface over the remote HTTP API
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new catalog API client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
	}, nil
}

// ListItems retrieves the full remote catalog. Any non-2xx status,
// including 404, is a remote failure; only the detail endpoint gives 404 a
// not-found meaning.
func (c *Client) ListItems(ctx context.Context) ([]integration.CatalogItem, error) {
	body, status, err := c.doGet(ctx, c.config.BaseURL+"/products")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", integration.ErrRemoteBadStatus, status)
	}

	var payload listPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse list response: %v", integration.ErrRemoteMalformedPayload, err)
	}
	if payload.Products == nil {
		return nil, fmt.Errorf("%w: list response missing products field", integration.ErrRemoteMalformedPayload)
	}

	items := make([]integration.CatalogItem, 0, len(payload.Products))
	for _, p := range payload.Products {
		items = append(items, p.toCatalogItem())
	}
	return items, nil
}

// GetItem retrieves a single catalog item by its remote identifier
func (c *Client) GetItem(ctx context.Context, id string) (*integration.CatalogItem, error) {
	if strings.TrimSpace(id) == "" {
		return nil, integration.ErrItemNotFound
	}

	body, status, err := c.doGet(ctx, c.config.BaseURL+"/products/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, integration.ErrItemNotFound
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", integration.ErrRemoteBadStatus, status)
	}

	var payload itemPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse item response: %v", integration.ErrRemoteMalformedPayload, err)
	}
	if payload.ProductID == "" {
		return nil, fmt.Errorf("%w: item response missing product_id field", integration.ErrRemoteMalformedPayload)
	}

	item := payload.toCatalogItem()
	return &item, nil
}

// doGet performs an HTTP GET against the remote API, reporting only
// transport failures. Status interpretation is left to the caller.
func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("catalogapi: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", integration.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read response: %v", integration.ErrRemoteUnavailable, err)
	}

	return body, resp.StatusCode, nil
}

// Ensure Client implements CatalogProvider
var _ integration.CatalogProvider = (*Client)(nil)
