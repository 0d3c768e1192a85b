package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/integration"
)

// SelectedItem is one catalog item chosen for import
type SelectedItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
}

// ImportResult reports how many products an import call created and updated.
// Invalid rows are skipped and appear in neither count.
type ImportResult struct {
	CreatedCount int `json:"created_count"`
	UpdatedCount int `json:"updated_count"`
}

// ProductResponse is the outward representation of a stored product
type ProductResponse struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	ActivePrice decimal.Decimal `json:"active_price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CatalogItemResponse is the outward representation of a remote catalog item
type CatalogItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ToProductResponse converts a product to its response representation
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		ExternalID:  product.ExternalID,
		Name:        product.Name,
		ActivePrice: product.ActivePrice,
		ImageURL:    product.ImageURL,
		Description: product.Description,
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToCatalogItemResponse converts a remote catalog item to its response representation
func ToCatalogItemResponse(item integration.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		Description: item.Description,
	}
}
