package integration

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Remote Catalog Errors
// ---------------------------------------------------------------------------

var (
	// ErrRemoteUnavailable indicates the remote catalog could not be reached
	// (network error, timeout)
	ErrRemoteUnavailable = errors.New("integration: remote catalog unavailable")

	// ErrRemoteBadStatus indicates the remote catalog answered with a non-2xx
	// status code
	ErrRemoteBadStatus = errors.New("integration: remote catalog request failed")

	// ErrRemoteMalformedPayload indicates the remote catalog answered with a
	// payload that could not be decoded into the expected shape
	ErrRemoteMalformedPayload = errors.New("integration: invalid remote catalog response")

	// ErrItemNotFound indicates the requested item does not exist on the
	// remote catalog
	ErrItemNotFound = errors.New("integration: catalog item not found")
)

// ---------------------------------------------------------------------------
// CatalogItem
// ---------------------------------------------------------------------------

// CatalogItem is an item as served by the remote catalog. It is transient:
// this system never owns or persists it directly.
type CatalogItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	ImageURL    string
	Description string
}

// ---------------------------------------------------------------------------
// CatalogProvider
// ---------------------------------------------------------------------------

// CatalogProvider is the contract for fetching the remote product catalog.
// Implementations must not cache or retry; both are the caller's decision.
type CatalogProvider interface {
	// ListItems fetches the full catalog from the remote list endpoint
	ListItems(ctx context.Context) ([]CatalogItem, error)

	// GetItem fetches a single item from the remote detail endpoint.
	// Returns ErrItemNotFound when the remote answers 404.
	GetItem(ctx context.Context, id string) (*CatalogItem, error)
}
